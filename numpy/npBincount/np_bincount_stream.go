package npBincount

import (
	"fmt"

	"bincount/infra/errorx"
	"bincount/infra/errorx/errCode"
)

// Counter 逐个累加 index，内存只和 binCount 有关。非并发安全
type Counter struct {
	counts []float64
	policy TruncPolicy
	n      int
}

func NewCounter(binCount int, policy TruncPolicy) (*Counter, error) {
	if err := checkArgs(0, binCount, policy); err != nil {
		return nil, err
	}
	return &Counter{counts: make([]float64, binCount), policy: policy}, nil
}

// Add 校验失败时计数不变
func (c *Counter) Add(v float64) error {
	if len(c.counts) == 0 {
		return errorx.New(errCode.INVALID_BIN_COUNT, "bin count is 0, no bin can be hit")
	}
	b, err := binOf(v, len(c.counts), c.policy)
	if err != nil {
		return errorx.Wrap(err, fmt.Sprintf("indices[%d]", c.n))
	}
	c.counts[b]++
	c.n++
	return nil
}

// AddAll 整批校验通过后才累加
func (c *Counter) AddAll(vs []float64) error {
	if len(vs) == 0 {
		return nil
	}
	if len(c.counts) == 0 {
		return errorx.Newf(errCode.INVALID_BIN_COUNT, "bin count is 0 but %d indices given", len(vs))
	}

	bins := make([]int, len(vs))
	for i, v := range vs {
		b, err := binOf(v, len(c.counts), c.policy)
		if err != nil {
			return errorx.Wrap(err, fmt.Sprintf("indices[%d]", c.n+i))
		}
		bins[i] = b
	}
	for _, b := range bins {
		c.counts[b]++
	}
	c.n += len(vs)
	return nil
}

// N 已计数的样本数
func (c *Counter) N() int { return c.n }

func (c *Counter) BinCount() int { return len(c.counts) }

// Counts 返回副本
func (c *Counter) Counts() []float64 {
	out := make([]float64, len(c.counts))
	copy(out, c.counts)
	return out
}
