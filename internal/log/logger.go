package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger はキーと値のペアを受け取る構造化ロガーです。
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Slog は log/slog を使った Logger 実装です。
type Slog struct {
	l *slog.Logger
}

// New は LOG_LEVEL に従って標準エラー出力へ書くロガーを作成します。
// 標準出力はフィルタ結果に使うため使いません。
func New() *Slog {
	return NewWithWriter(os.Stderr, ParseLevel(os.Getenv("LOG_LEVEL")))
}

// NewWithWriter は w へ level 以上を書くロガーを作成します。
func NewWithWriter(w io.Writer, level slog.Level) *Slog {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Slog{l: slog.New(h)}
}

// ParseLevel は "debug" / "info" / "warn" / "error" を slog.Level に変換します。
// 不明な値は Info です。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *Slog) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *Slog) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *Slog) Error(msg string, args ...any) { s.l.Error(msg, args...) }
