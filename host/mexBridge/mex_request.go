package mexBridge

import (
	"math"

	"bincount/infra/errorx"
	"bincount/infra/errorx/errCode"

	"github.com/tidwall/gjson"
)

// Request JSON 形式的一次调用
//
//	{"indices": [1, 2, 2, 3], "bins": 3}
//
// jsonencode 会把 NaN 写成 null，这里还原成 NaN 交给核心报错
type Request struct {
	Indices []float64
	Bins    float64
}

func ParseRequest(data []byte) (Request, error) {
	if !gjson.ValidBytes(data) {
		return Request{}, errorx.New(errCode.INVALID_ARGUMENT, "request is not valid JSON")
	}
	root := gjson.ParseBytes(data)

	idx := root.Get("indices")
	if !idx.IsArray() {
		return Request{}, errorx.New(errCode.INVALID_ARGUMENT, "request.indices must be an array")
	}
	bins := root.Get("bins")
	if bins.Type != gjson.Number {
		return Request{}, errorx.New(errCode.INVALID_ARGUMENT, "request.bins must be a number")
	}

	req := Request{Indices: make([]float64, 0, len(idx.Array())), Bins: bins.Float()}
	var err error
	i := 0
	idx.ForEach(func(_, v gjson.Result) bool {
		switch v.Type {
		case gjson.Number:
			req.Indices = append(req.Indices, v.Float())
		case gjson.Null:
			req.Indices = append(req.Indices, math.NaN())
		default:
			err = errorx.Newf(errCode.INVALID_ARGUMENT, "request.indices[%d] is %s, not a number", i, v.Type)
			return false
		}
		i++
		return true
	})
	if err != nil {
		return Request{}, err
	}
	return req, nil
}

// Args 转成 prhs
func (r Request) Args() []Array {
	return []Array{NewColumn(r.Indices), NewScalar(r.Bins)}
}
