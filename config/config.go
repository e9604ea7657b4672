package config

import (
	"os"
	"strings"
	"sync/atomic"

	"bincount/host/mexBridge"
	"bincount/infra/errorx"
	"bincount/infra/errorx/errCode"
	"bincount/infra/observe/log/staticLog"
	"bincount/numpy/npBincount"

	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
}

type Config struct {
	Workers           int       `yaml:"workers"`
	ParallelThreshold int       `yaml:"parallelThreshold"`
	Policy            string    `yaml:"policy"`
	Log               LogConfig `yaml:"log"`
}

// 用 atomic.Value 存当前配置，热更新时读取无锁
var cfgValue atomic.Value // stores *Config

func Default() *Config {
	return &Config{
		Workers:           0,
		ParallelThreshold: mexBridge.DefaultOptions().ParallelThreshold,
		Policy:            npBincount.TRUNC_TOWARD_ZERO.String(),
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load 未出现的字段保留默认值
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errorx.WrapCode(err, errCode.INVALID_ARGUMENT, "read yaml")
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errorx.WrapCode(err, errCode.INVALID_VALUE, "unmarshal yaml")
	}

	// 规范化：小写、去空格
	c.Policy = strings.ToLower(strings.TrimSpace(c.Policy))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Workers < 0 {
		return errorx.Newf(errCode.INVALID_VALUE, "invalid workers: %d", c.Workers)
	}
	if c.ParallelThreshold < 0 {
		return errorx.Newf(errCode.INVALID_VALUE, "invalid parallelThreshold: %d", c.ParallelThreshold)
	}
	if npBincount.GetMyTruncPolicy(c.Policy) == npBincount.TRUNC_POLICY_ERROR {
		return errorx.Newf(errCode.INVALID_VALUE, "invalid policy %q, expected 'trunc' or 'strict'", c.Policy)
	}
	if _, err := staticLog.ParseLevel(c.Log.Level); err != nil {
		return errorx.Newf(errCode.INVALID_VALUE, "invalid log level %q", c.Log.Level)
	}
	return nil
}

func Init(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	cfgValue.Store(c)
	return nil
}

// Get 没有 Init 过就用默认配置
func Get() *Config {
	cAny := cfgValue.Load()
	if cAny == nil {
		return Default()
	}
	return cAny.(*Config)
}

func (c *Config) Options() mexBridge.Options {
	return mexBridge.Options{
		Workers:           c.Workers,
		ParallelThreshold: c.ParallelThreshold,
		Policy:            npBincount.GetMyTruncPolicy(c.Policy),
	}
}

func (c *Config) LogOptions() staticLog.Options {
	return staticLog.Options{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
	}
}
