package mexBridge

import (
	"math"

	"bincount/infra/errorx"
	"bincount/infra/errorx/errCode"
	"bincount/infra/observe/log/staticLog"
	"bincount/numpy/npBincount"

	"github.com/sirupsen/logrus"
)

// 输出向量长度上限：1<<26 个 float64，单次分配最多 512 MiB
const MAX_BIN_COUNT = 1 << 26

type Options struct {
	Workers           int // <= 0 用 CPU 核心数
	ParallelThreshold int // 样本数达到该值才并行，0 关闭并行
	Policy            npBincount.TruncPolicy
}

func DefaultOptions() Options {
	return Options{ParallelThreshold: 1 << 16, Policy: npBincount.TRUNC_TOWARD_ZERO}
}

// Call 对应 mexFunction(nlhs, plhs, nrhs, prhs)
//
//	counts = bincount(indices, nbins)
//
// 返回 nbins x 1 列向量
func Call(nlhs int, prhs []Array, opt Options) ([]Array, error) {
	if len(prhs) != 2 {
		return nil, fail(errorx.New(errCode.INVALID_ARGUMENT, "Needs two input arguments."))
	}
	if nlhs > 1 {
		return nil, fail(errorx.New(errCode.INVALID_ARGUMENT, "Too many output arguments."))
	}
	if err := prhs[0].check(); err != nil {
		return nil, fail(errorx.Wrap(err, "prhs[0]"))
	}

	binCount, err := binCountOf(prhs[1])
	if err != nil {
		return nil, fail(errorx.Wrap(err, "prhs[1]"))
	}

	indices := prhs[0].Data
	parallel := opt.ParallelThreshold > 0 && len(indices) >= opt.ParallelThreshold

	staticLog.Log.WithFields(logrus.Fields{
		"n":        len(indices),
		"bins":     binCount,
		"policy":   opt.Policy.String(),
		"parallel": parallel,
	}).Debug("bincount")

	var out []float64
	if parallel {
		out, err = npBincount.CountParallel(indices, binCount, opt.Workers, opt.Policy)
	} else {
		out, err = npBincount.CountWithPolicy(indices, binCount, opt.Policy)
	}
	if err != nil {
		return nil, fail(err)
	}
	return []Array{NewColumn(out)}, nil
}

// 宿主传来的是 double，按 (mwSize) 强转语义向零截断
func binCountOf(a Array) (int, error) {
	v, err := a.Scalar()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errorx.Newf(errCode.INVALID_BIN_COUNT, "bin count %v is not finite", v)
	}
	if v < 0 {
		return 0, errorx.Newf(errCode.INVALID_BIN_COUNT, "bin count must be >= 0, got %v", v)
	}
	if v > MAX_BIN_COUNT {
		return 0, errorx.Newf(errCode.INVALID_BIN_COUNT, "bin count %v exceeds %d", v, MAX_BIN_COUNT)
	}
	return int(v), nil
}

func fail(err error) error {
	staticLog.Log.WithField("code", errorx.CodeOf(err).String()).Warn(err.Error())
	return err
}
