package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prom は Prometheus を使ったメトリクス実装です。
type Prom struct {
	addNew    prometheus.Counter
	addUpdate prometheus.Counter
	hasHit    prometheus.Counter
	hasMiss   prometheus.Counter
	removed   prometheus.Counter
	rejected  prometheus.Counter
	evicted   prometheus.Counter
	cleared   prometheus.Counter
	size      prometheus.Gauge
}

// NewProm は Prometheus を使ったメトリクス実装を初期化し、reg に登録します。
// reg が nil の場合は prometheus.DefaultRegisterer を使います。
func NewProm(namespace string, reg prometheus.Registerer) *Prom {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	makeC := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}
	makeG := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}

	p := &Prom{
		addNew:    makeC("add_new_total", "Number of new values added"),
		addUpdate: makeC("add_update_total", "Number of re-adds that refreshed an existing value"),
		hasHit:    makeC("has_hit_total", "Number of membership probes that found a value"),
		hasMiss:   makeC("has_miss_total", "Number of membership probes that found nothing"),
		removed:   makeC("removed_total", "Number of values removed explicitly"),
		rejected:  makeC("rejected_total", "Number of values rejected by a zero-capacity set"),
		evicted:   makeC("evicted_total", "Number of evicted values"),
		cleared:   makeC("cleared_total", "Number of values dropped by Clear"),
		size:      makeG("size", "Current number of values held by the set"),
	}

	// 重複登録は panic するので、同じ reg に対しては 1 回だけ呼ぶ
	reg.MustRegister(
		p.addNew, p.addUpdate, p.hasHit, p.hasMiss, p.removed, p.rejected, p.evicted, p.cleared, p.size,
	)
	return p
}

// IncAddNew は新しい値が追加されたことをカウントします。
func (p *Prom) IncAddNew() { p.addNew.Inc() }

// IncAddUpdate は既存の値の使用順が更新されたことをカウントします。
func (p *Prom) IncAddUpdate() { p.addUpdate.Inc() }

// IncHasHit は Has のヒットをカウントします。
func (p *Prom) IncHasHit() { p.hasHit.Inc() }

// IncHasMiss は Has のミスをカウントします。
func (p *Prom) IncHasMiss() { p.hasMiss.Inc() }

// IncRemoved は明示的な削除をカウントします。
func (p *Prom) IncRemoved() { p.removed.Inc() }

// IncRejected は容量 0 による拒否をカウントします。
func (p *Prom) IncRejected() { p.rejected.Inc() }

// AddEvicted は追い出された値の数を加算します。
func (p *Prom) AddEvicted(n int) {
	if n > 0 {
		p.evicted.Add(float64(n))
	}
}

// AddCleared は Clear で削除された値の数を加算します。
func (p *Prom) AddCleared(n int) {
	if n > 0 {
		p.cleared.Add(float64(n))
	}
}

// SetSize は現在の要素数を設定します。
func (p *Prom) SetSize(n int) {
	if n >= 0 {
		p.size.Set(float64(n))
	}
}
