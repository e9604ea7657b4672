// 1-based index 数组 -> 每个 bin 的出现次数 (np.bincount 的 1-based 版本)
//
//	out[trunc(v - 1)] += 1,  len(out) == binCount
//
// 计数用 float64 保存，方便宿主直接当 double 向量使用
package npBincount

import (
	"fmt"
	"math"

	"bincount/infra/errorx"
	"bincount/infra/errorx/errCode"
)

// Count 按默认的截断策略计数
func Count(indices []float64, binCount int) ([]float64, error) {
	return CountWithPolicy(indices, binCount, TRUNC_TOWARD_ZERO)
}

// CountWithPolicy 任一元素非法则整体失败，不返回部分结果，不修改 indices
func CountWithPolicy(indices []float64, binCount int, policy TruncPolicy) ([]float64, error) {
	if err := checkArgs(len(indices), binCount, policy); err != nil {
		return nil, err
	}

	out := make([]float64, binCount)
	if err := accumulate(out, indices, 0, policy); err != nil {
		return nil, err
	}
	return out, nil
}

// BinOf 单个 index 对应的 0-based bin
func BinOf(v float64, binCount int, policy TruncPolicy) (int, error) {
	if err := checkArgs(1, binCount, policy); err != nil {
		return 0, err
	}
	return binOf(v, binCount, policy)
}

func checkArgs(n, binCount int, policy TruncPolicy) error {
	if !policy.valid() {
		return errorx.Newf(errCode.INVALID_VALUE, "invalid policy %d, expected 'trunc' or 'strict'", int(policy))
	}
	if binCount < 0 {
		return errorx.Newf(errCode.INVALID_BIN_COUNT, "bin count must be >= 0, got %d", binCount)
	}
	if binCount == 0 && n > 0 {
		return errorx.Newf(errCode.INVALID_BIN_COUNT, "bin count is 0 but %d indices given", n)
	}
	return nil
}

// offset 只用于报错时给出全局下标
func accumulate(out, indices []float64, offset int, policy TruncPolicy) error {
	binCount := len(out)
	for i, v := range indices {
		b, err := binOf(v, binCount, policy)
		if err != nil {
			return errorx.Wrap(err, fmt.Sprintf("indices[%d]", offset+i))
		}
		out[b]++
	}
	return nil
}

func binOf(v float64, binCount int, policy TruncPolicy) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errorx.Newf(errCode.NON_FINITE_INPUT, "index %v is not finite", v)
	}
	if policy == STRICT_ONE_BASED && v < 1 {
		return 0, errorx.Newf(errCode.INDEX_OUT_OF_RANGE, "index %v is below 1", v)
	}

	// 向零截断，不是 floor：0.5 -> trunc(-0.5) = 0
	// 先在 float 上比较范围，超大值直接转 int 会溢出
	b := math.Trunc(v - 1)
	if b < 0 || b >= float64(binCount) {
		return 0, errorx.Newf(errCode.INDEX_OUT_OF_RANGE, "index %v maps to bin %v, outside [0, %d]", v, b, binCount-1)
	}
	return int(b), nil
}
