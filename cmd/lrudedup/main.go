// Package main は直近に見た行を取り除く lrudedup コマンドのエントリーポイントを提供します。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/amakane-hakari/lruset/internal/config"
	"github.com/amakane-hakari/lruset/internal/dedup"
	ilog "github.com/amakane-hakari/lruset/internal/log"
	"github.com/amakane-hakari/lruset/internal/metrics"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// run は stdin をフィルタして stdout に書きます。ログとメトリクスは stderr に出します。
func run(ctx context.Context, cfg *config.Config, stdin io.ReadCloser, stdout, stderr io.Writer) error {
	logger := ilog.NewWithWriter(stderr, ilog.ParseLevel(os.Getenv("LOG_LEVEL")))

	reg := prometheus.NewRegistry()
	var m metrics.Interface = metrics.Noop{}
	if cfg.Metrics {
		m = metrics.NewProm("lrudedup", reg)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// キャンセル時に stdin を閉じて読み込みを打ち切る（正常終了時も閉じる）
	go func() {
		<-ctx.Done()
		_ = stdin.Close()
	}()

	f := dedup.New(dedup.Options{
		Capacity:    cfg.Capacity,
		FoldCase:    cfg.FoldCase,
		TrimSpace:   cfg.TrimSpace,
		OnlyRepeats: cfg.OnlyRepeats,
		Logger:      logger,
		Metrics:     m,
	})

	stats, err := f.Run(ctx, stdin, stdout)
	logger.Info("lrudedup.done",
		"lines", stats.Lines,
		"emitted", stats.Emitted,
		"repeats", stats.Repeats,
		"evicted", stats.Evicted,
	)
	if cfg.Metrics {
		if derr := dumpMetrics(stderr, reg); derr != nil {
			logger.Error("lrudedup.metrics", "err", derr)
		}
	}
	if err != nil {
		logger.Error("lrudedup.failed", "err", err)
		return err
	}
	return nil
}

func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
