// Package dedup は直近 N 種類の行を覚えておき、繰り返し現れた行を取り除くフィルタを提供します。
package dedup

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"

	ilog "github.com/amakane-hakari/lruset/internal/log"
	"github.com/amakane-hakari/lruset/internal/lruset"
	"github.com/amakane-hakari/lruset/internal/metrics"
)

const maxLineSize = 1 << 20 // 1MB

// Options はフィルタの設定です。
type Options struct {
	Capacity    int  // 覚えておく行の種類数。0 なら何も覚えない
	FoldCase    bool // 大文字小文字を区別しない
	TrimSpace   bool // 前後の空白を無視する
	OnlyRepeats bool // 繰り返し現れた行だけを出力する
	Logger      ilog.Logger
	Metrics     metrics.Interface
}

// Stats は Run の集計です。
type Stats struct {
	Lines   int
	Emitted int
	Repeats int
	Evicted int
}

// Filter は行の重複除去フィルタです。並行利用はできません。
type Filter struct {
	opts  Options
	set   *lruset.Set[string]
	stats Stats
}

// New は新しい Filter を作成します。Capacity が負の場合は panic します。
func New(opts Options) *Filter {
	norm := normalizer(opts.FoldCase, opts.TrimSpace)
	equal := func(a, b string) bool { return norm(a) == norm(b) }
	hash := func(s string) uint64 { return lruset.StringHash(norm(s)) }

	setOpts := []lruset.Option{lruset.WithName("dedup"), lruset.WithMetrics(opts.Metrics)}
	if opts.Logger != nil {
		setOpts = append(setOpts, lruset.WithLogger(opts.Logger))
	}
	return &Filter{
		opts: opts,
		set:  lruset.New(opts.Capacity, equal, hash, setOpts...),
	}
}

func normalizer(foldCase, trim bool) func(string) string {
	switch {
	case foldCase && trim:
		return func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	case foldCase:
		return strings.ToLower
	case trim:
		return strings.TrimSpace
	default:
		return func(s string) string { return s }
	}
}

// Seen は line と等しい行を直近で見ていたかを返し、line を最新として記録します。
func (f *Filter) Seen(line string) bool {
	res := f.set.Add(line)
	if res.Outcome == lruset.OutcomeEvicted {
		f.stats.Evicted++
	}
	return res.Refreshed
}

// Stats はこれまでの集計を返します。
func (f *Filter) Stats() Stats {
	return f.stats
}

// Run は r の各行を調べ、出力対象の行を w に書きます。
// ctx がキャンセルされると読み込みを止めてエラーを返します。
func (f *Filter) Run(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	bw := bufio.NewWriter(w)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			_ = bw.Flush()
			return f.stats, errors.Wrap(err, "dedup canceled")
		}
		line := sc.Text()
		f.stats.Lines++
		repeat := f.Seen(line)
		if repeat {
			f.stats.Repeats++
		}
		if repeat != f.opts.OnlyRepeats {
			continue
		}
		if _, err := bw.WriteString(line); err != nil {
			return f.stats, errors.Wrap(err, "write line")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return f.stats, errors.Wrap(err, "write line")
		}
		f.stats.Emitted++
	}
	if err := ctx.Err(); err != nil {
		_ = bw.Flush()
		return f.stats, errors.Wrap(err, "dedup canceled")
	}
	if err := sc.Err(); err != nil {
		_ = bw.Flush()
		return f.stats, errors.Wrap(err, "read input")
	}
	if err := bw.Flush(); err != nil {
		return f.stats, errors.Wrap(err, "flush output")
	}
	if f.opts.Logger != nil {
		f.opts.Logger.Debug("dedup.done", "lines", f.stats.Lines, "emitted", f.stats.Emitted, "repeats", f.stats.Repeats)
	}
	return f.stats, nil
}
