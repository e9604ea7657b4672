package npBincount

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// CountParallel 按连续区间切分 indices，每个 worker 写私有的 partial，
// 全部结束后逐元素求和。结果与 Count 完全一致，报错取输入顺序上最早的那个
// workers <= 0 时用 CPU 核心数
func CountParallel(indices []float64, binCount, workers int, policy TruncPolicy) ([]float64, error) {
	n := len(indices)
	if err := checkArgs(n, binCount, policy); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return CountWithPolicy(indices, binCount, policy)
	}

	chunk := (n + workers - 1) / workers
	partials := make([][]float64, workers)
	errs := make([]error, workers)

	wg := sync.WaitGroup{}
	worker := func(w, lo, hi int) {
		defer wg.Done()
		part := make([]float64, binCount)
		if err := accumulate(part, indices[lo:hi], lo, policy); err != nil {
			errs[w] = err
			return
		}
		partials[w] = part
	}

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		wg.Add(1)
		go worker(w, lo, hi)
	}
	wg.Wait()

	// chunk 顺序即输入顺序
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make([]float64, binCount)
	for _, part := range partials {
		if part != nil {
			floats.Add(out, part)
		}
	}
	return out, nil
}
