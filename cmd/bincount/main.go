// bincount 从文件或 stdin 读 1-based index，输出每个 bin 的计数（每行一个）
//
//	echo "1 2 2 3" | bincount -n 3
//	echo '{"indices":[1,2,2,3],"bins":3}' | bincount --json
package main

import (
	"fmt"
	"os"

	"bincount/infra/errorx"
	"bincount/infra/observe/log/staticLog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		staticLog.Log.WithField("code", errorx.CodeOf(err).String()).Debug("bincount failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
