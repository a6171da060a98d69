package dedup

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amakane-hakari/lruset/internal/metrics"
)

func TestFilter_Run(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		in    string
		want  string
		stats Stats
	}{
		{
			name:  "exact",
			opts:  Options{Capacity: 8},
			in:    "a\nb\na\nc\nb\n",
			want:  "a\nb\nc\n",
			stats: Stats{Lines: 5, Emitted: 3, Repeats: 2},
		},
		{
			name:  "fold case",
			opts:  Options{Capacity: 8, FoldCase: true},
			in:    "Go\ngo\nGO\nrust\n",
			want:  "Go\nrust\n",
			stats: Stats{Lines: 4, Emitted: 2, Repeats: 2},
		},
		{
			name:  "trim space",
			opts:  Options{Capacity: 8, TrimSpace: true},
			in:    "x\n  x \ny\n",
			want:  "x\ny\n",
			stats: Stats{Lines: 3, Emitted: 2, Repeats: 1},
		},
		{
			name:  "only repeats",
			opts:  Options{Capacity: 8, OnlyRepeats: true},
			in:    "a\nb\na\na\n",
			want:  "a\na\n",
			stats: Stats{Lines: 4, Emitted: 2, Repeats: 2},
		},
		{
			name:  "bounded memory forgets oldest",
			opts:  Options{Capacity: 2},
			in:    "a\nb\nc\na\n",
			want:  "a\nb\nc\na\n",
			stats: Stats{Lines: 4, Emitted: 4, Repeats: 0, Evicted: 2},
		},
		{
			name:  "zero capacity remembers nothing",
			opts:  Options{Capacity: 0},
			in:    "a\na\n",
			want:  "a\na\n",
			stats: Stats{Lines: 2, Emitted: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			stats, err := New(tt.opts).Run(context.Background(), strings.NewReader(tt.in), &out)
			require.NoError(t, err)
			require.Equal(t, tt.want, out.String())
			require.Equal(t, tt.stats, stats)
		})
	}
}

func TestFilter_SeenRefreshesRecency(t *testing.T) {
	f := New(Options{Capacity: 2})
	require.False(t, f.Seen("a"))
	require.False(t, f.Seen("b"))
	require.True(t, f.Seen("a")) // a を最新にする
	require.False(t, f.Seen("c")) // b が追い出される
	require.True(t, f.Seen("a"))
	require.False(t, f.Seen("b"))
	require.Equal(t, 2, f.Stats().Evicted)
}

func TestFilter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := New(Options{Capacity: 4}).Run(ctx, strings.NewReader("a\nb\n"), &out)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

func TestFilter_Metrics(t *testing.T) {
	m := metrics.NewSimple()
	f := New(Options{Capacity: 1, Metrics: m})
	_, err := f.Run(context.Background(), strings.NewReader("a\na\nb\n"), &bytes.Buffer{})
	require.NoError(t, err)

	require.Equal(t, uint64(2), m.AddNew.Load())
	require.Equal(t, uint64(1), m.AddUpdate.Load())
	require.Equal(t, uint64(1), m.Evicted.Load())
	require.Equal(t, uint64(1), m.Size.Load())
	// 1 行につき 1 回の Add だけで判定する
	require.Equal(t, uint64(0), m.HasHit.Load())
	require.Equal(t, uint64(0), m.HasMiss.Load())
}
