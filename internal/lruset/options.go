package lruset

import (
	"github.com/amakane-hakari/lruset/internal/metrics"
)

type logLike interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config はセットの設定を表します。
type Config struct {
	Name    string // ログに付与する名前
	Logger  logLike
	Metrics metrics.Interface
}

// Option はセットのオプションを設定する関数です。
type Option func(*Config)

// WithLogger はセットのロガーを設定するオプションです。
func WithLogger(l logLike) Option {
	return func(c *Config) { c.Logger = l }
}

// WithMetrics はセットのメトリクスを設定するオプションです。
func WithMetrics(m metrics.Interface) Option {
	return func(c *Config) { c.Metrics = m }
}

// WithName はログ出力に使う名前を設定するオプションです。
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}
