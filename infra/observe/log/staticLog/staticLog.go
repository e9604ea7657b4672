// 进程级静态日志，默认输出 stderr，配置文件路径后按大小滚动
package staticLog

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = newLogger(os.Stderr, logrus.InfoLevel)

var (
	mu     sync.Mutex
	closer io.Closer // 当前输出若是文件（lumberjack），重新配置时要关掉
)

type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

func ParseLevel(s string) (logrus.Level, error) {
	if strings.TrimSpace(s) == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
}

// Init 按 Options 重新配置全局 Log
func Init(opt Options) error {
	level, err := ParseLevel(opt.Level)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stderr
	if opt.File != "" {
		out = &lumberjack.Logger{
			Filename:   opt.File,
			MaxSize:    opt.MaxSizeMB,
			MaxBackups: opt.MaxBackups,
			MaxAge:     opt.MaxAgeDays,
		}
	}

	if err := swapOutput(out); err != nil {
		return err
	}
	Log.SetLevel(level)
	return nil
}

// SetOutput 测试时把日志导到 buffer
func SetOutput(w io.Writer) {
	_ = swapOutput(w)
}

// os.Stderr 这类外部传入的 writer 不归这里管，只关自己打开的文件
func swapOutput(w io.Writer) error {
	mu.Lock()
	defer mu.Unlock()

	Log.SetOutput(w)
	prev := closer
	closer = nil
	if lj, ok := w.(*lumberjack.Logger); ok {
		closer = lj
	}
	if prev != nil && prev != closer {
		return prev.Close()
	}
	return nil
}
