package mexBridge

import (
	"bufio"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"bincount/infra/errorx"
	"bincount/infra/errorx/errCode"
	"bincount/numpy/npBincount"
)

// CountReader 从文本流读 index（空白或逗号分隔）边读边计数，内存与输入长度无关
// 任何错误都不返回部分结果
func CountReader(r io.Reader, binCount int, policy npBincount.TruncPolicy) ([]float64, error) {
	c, err := npBincount.NewCounter(binCount, policy)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	sc.Split(scanNumbers)
	pos := 0
	for sc.Scan() {
		tok := sc.Text()
		v, perr := strconv.ParseFloat(tok, 64)
		if perr != nil {
			return nil, errorx.Newf(errCode.INVALID_ARGUMENT, "token %d (%q) is not a number", pos, tok)
		}
		if err := c.Add(v); err != nil {
			return nil, err
		}
		pos++
	}
	if err := sc.Err(); err != nil {
		return nil, errorx.WrapCode(err, errCode.INVALID_ARGUMENT, "read indices")
	}
	return c.Counts(), nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// scanNumbers 同 bufio.ScanWords，但逗号也算分隔符，逗号行不会变成一个超长 token
func scanNumbers(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for width := 0; start < len(data); start += width {
		var r rune
		r, width = utf8.DecodeRune(data[start:])
		if !isSeparator(r) {
			break
		}
	}
	for width, i := 0, start; i < len(data); i += width {
		var r rune
		r, width = utf8.DecodeRune(data[i:])
		if isSeparator(r) {
			return i + width, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	// 需要更多数据
	return start, nil, nil
}
