package utils

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/user/movie-api/internal/config"
)

// NewLogger 创建进程日志：生产环境输出 JSON，其余环境输出文本
func NewLogger(cfg *config.Config) hclog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *config.Config, out io.Writer) hclog.Logger {
	level := hclog.LevelFromString(cfg.LogLevel)
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "movie-api",
		Level:      level,
		Output:     out,
		JSONFormat: cfg.IsProduction(),
	})
}
