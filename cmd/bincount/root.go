package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"bincount/config"
	"bincount/host/mexBridge"
	"bincount/infra/errorx"
	"bincount/infra/errorx/errCode"
	"bincount/infra/observe/log/staticLog"
	"bincount/numpy/npBincount"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	bins       int
	file       string
	jsonInput  bool
	configPath string
	workers    int
	policy     string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "bincount",
		Short:         "Count occurrences of 1-based bin indices",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.bins, "bins", "n", -1, "number of bins (output length)")
	fl.StringVarP(&f.file, "file", "f", "-", "input file, - for stdin")
	fl.BoolVar(&f.jsonInput, "json", false, `input is a JSON request {"indices":[...],"bins":n}`)
	fl.StringVarP(&f.configPath, "config", "c", "", "yaml config file")
	fl.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for --json input, overrides config; text input is streamed on one goroutine")
	fl.StringVarP(&f.policy, "policy", "p", "", "index policy trunc|strict, overrides config")
	return cmd
}

func run(cmd *cobra.Command, f *rootFlags) error {
	if f.configPath != "" {
		if err := config.Init(f.configPath); err != nil {
			return err
		}
	}
	cfg := config.Get()
	if err := staticLog.Init(cfg.LogOptions()); err != nil {
		return err
	}

	// 文本输入走 CountReader 流式计数，workers/parallelThreshold 只对 --json 生效
	opt := cfg.Options()
	if cmd.Flags().Changed("workers") {
		if !f.jsonInput {
			return errorx.New(errCode.INVALID_ARGUMENT, "--workers only applies to --json input")
		}
		opt.Workers = f.workers
	}
	if f.policy != "" {
		opt.Policy = npBincount.GetMyTruncPolicy(f.policy)
		if opt.Policy == npBincount.TRUNC_POLICY_ERROR {
			return errorx.Newf(errCode.INVALID_VALUE, "invalid policy %q, expected 'trunc' or 'strict'", f.policy)
		}
	}

	in, closeIn, err := openInput(cmd, f.file)
	if err != nil {
		return err
	}
	defer closeIn()

	var counts []float64
	if f.jsonInput {
		counts, err = countJSON(in, opt)
	} else {
		if !cmd.Flags().Changed("bins") {
			return errorx.New(errCode.INVALID_ARGUMENT, "--bins is required unless --json is set")
		}
		counts, err = mexBridge.CountReader(in, f.bins, opt.Policy)
	}
	if err != nil {
		return err
	}
	return writeColumn(cmd.OutOrStdout(), counts)
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" || path == "" {
		return cmd.InOrStdin(), func() {}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, errorx.WrapCode(err, errCode.INVALID_ARGUMENT, "open input")
	}
	return fh, func() { _ = fh.Close() }, nil
}

func countJSON(in io.Reader, opt mexBridge.Options) ([]float64, error) {
	b, err := io.ReadAll(in)
	if err != nil {
		return nil, errorx.WrapCode(err, errCode.INVALID_ARGUMENT, "read request")
	}
	req, err := mexBridge.ParseRequest(b)
	if err != nil {
		return nil, err
	}
	plhs, err := mexBridge.Call(1, req.Args(), opt)
	if err != nil {
		return nil, err
	}
	return plhs[0].Data, nil
}

func writeColumn(w io.Writer, counts []float64) error {
	bw := bufio.NewWriter(w)
	for _, c := range counts {
		if _, err := fmt.Fprintln(bw, strconv.FormatFloat(c, 'f', -1, 64)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
