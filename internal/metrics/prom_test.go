package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestProm_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewProm("test", reg)

	p.IncAddNew()
	p.IncAddNew()
	p.IncAddUpdate()
	p.AddEvicted(3)
	p.AddEvicted(-1)
	p.AddCleared(4)
	p.AddCleared(0)
	p.SetSize(2)
	p.SetSize(-5)

	err := testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP test_add_new_total Number of new values added
# TYPE test_add_new_total counter
test_add_new_total 2
# HELP test_add_update_total Number of re-adds that refreshed an existing value
# TYPE test_add_update_total counter
test_add_update_total 1
# HELP test_cleared_total Number of values dropped by Clear
# TYPE test_cleared_total counter
test_cleared_total 4
# HELP test_evicted_total Number of evicted values
# TYPE test_evicted_total counter
test_evicted_total 3
# HELP test_size Current number of values held by the set
# TYPE test_size gauge
test_size 2
`), "test_add_new_total", "test_add_update_total", "test_cleared_total", "test_evicted_total", "test_size")
	require.NoError(t, err)
}

func TestProm_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewProm("dup", reg)
	require.Panics(t, func() { NewProm("dup", reg) })
}

func TestSimple_IgnoresNegative(t *testing.T) {
	s := NewSimple()
	s.AddEvicted(2)
	s.AddEvicted(0)
	s.AddEvicted(-3)
	s.SetSize(4)
	s.SetSize(-1)
	s.AddCleared(3)
	s.AddCleared(-2)

	require.Equal(t, uint64(2), s.Evicted.Load())
	require.Equal(t, uint64(4), s.Size.Load())
	require.Equal(t, uint64(3), s.Cleared.Load())
}
