package metrics

import (
	"sync/atomic"
)

// Interface はメトリクス更新用抽象
type Interface interface {
	IncAddNew()
	IncAddUpdate()
	IncHasHit()
	IncHasMiss()
	IncRemoved()
	IncRejected()
	AddEvicted(n int)
	AddCleared(n int)
	SetSize(n int)
}

// Noop は何もしないメトリクス実装
type Noop struct{}

// IncAddNew は何もしないメトリクス実装
func (Noop) IncAddNew() {}

// IncAddUpdate は何もしないメトリクス実装
func (Noop) IncAddUpdate() {}

// IncHasHit は何もしないメトリクス実装
func (Noop) IncHasHit() {}

// IncHasMiss は何もしないメトリクス実装
func (Noop) IncHasMiss() {}

// IncRemoved は何もしないメトリクス実装
func (Noop) IncRemoved() {}

// IncRejected は何もしないメトリクス実装
func (Noop) IncRejected() {}

// AddEvicted は何もしないメトリクス実装
func (Noop) AddEvicted(_ int) {}

// AddCleared は何もしないメトリクス実装
func (Noop) AddCleared(_ int) {}

// SetSize は何もしないメトリクス実装
func (Noop) SetSize(_ int) {}

// Simple はシンプルなメトリクス実装です。
type Simple struct {
	AddNew    atomic.Uint64
	AddUpdate atomic.Uint64
	HasHit    atomic.Uint64
	HasMiss   atomic.Uint64
	Removed   atomic.Uint64
	Rejected  atomic.Uint64
	Evicted   atomic.Uint64
	Cleared   atomic.Uint64
	Size      atomic.Uint64
}

// NewSimple は新しい Simple メトリクスを作成します。
func NewSimple() *Simple { return &Simple{} }

// IncAddNew は新しい値が追加されたことをカウントします。
func (m *Simple) IncAddNew() { m.AddNew.Add(1) }

// IncAddUpdate は既存の値の使用順が更新されたことをカウントします。
func (m *Simple) IncAddUpdate() { m.AddUpdate.Add(1) }

// IncHasHit は Has のヒットをカウントします。
func (m *Simple) IncHasHit() { m.HasHit.Add(1) }

// IncHasMiss は Has のミスをカウントします。
func (m *Simple) IncHasMiss() { m.HasMiss.Add(1) }

// IncRemoved は明示的な削除をカウントします。
func (m *Simple) IncRemoved() { m.Removed.Add(1) }

// IncRejected は容量 0 による拒否をカウントします。
func (m *Simple) IncRejected() { m.Rejected.Add(1) }

// AddEvicted はエビクションされた値の数を加算します。
func (m *Simple) AddEvicted(n int) {
	if n > 0 {
		m.Evicted.Add(uint64(n))
	}
}

// AddCleared は Clear で削除された値の数を加算します。
func (m *Simple) AddCleared(n int) {
	if n > 0 {
		m.Cleared.Add(uint64(n))
	}
}

// SetSize は現在の要素数を設定します。
func (m *Simple) SetSize(n int) {
	if n >= 0 {
		m.Size.Store(uint64(n))
	}
}
