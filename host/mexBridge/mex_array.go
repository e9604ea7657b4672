// 宿主 (MATLAB mex) 调用边界：参数个数/类型校验，double 矩阵 <-> 计数核心
package mexBridge

import (
	"bincount/infra/errorx"
	"bincount/infra/errorx/errCode"
)

// Array 宿主侧 double 实矩阵，列优先
type Array struct {
	Data []float64
	Rows int
	Cols int
}

// NewColumn 列向量 (len x 1)
func NewColumn(data []float64) Array {
	return Array{Data: data, Rows: len(data), Cols: 1}
}

func NewScalar(v float64) Array {
	return Array{Data: []float64{v}, Rows: 1, Cols: 1}
}

func (a Array) NumberOfElements() int {
	return a.Rows * a.Cols
}

func (a Array) check() error {
	if a.Rows < 0 || a.Cols < 0 {
		return errorx.Newf(errCode.INVALID_ARGUMENT, "negative dimension %dx%d", a.Rows, a.Cols)
	}
	if len(a.Data) != a.NumberOfElements() {
		return errorx.Newf(errCode.INVALID_ARGUMENT, "%dx%d array holds %d values", a.Rows, a.Cols, len(a.Data))
	}
	return nil
}

func (a Array) Scalar() (float64, error) {
	if err := a.check(); err != nil {
		return 0, err
	}
	if a.NumberOfElements() != 1 {
		return 0, errorx.Newf(errCode.INVALID_ARGUMENT, "expected a scalar, got %dx%d", a.Rows, a.Cols)
	}
	return a.Data[0], nil
}
