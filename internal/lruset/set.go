// Package lruset は容量を超えると最も長く使われていない値を追い出す集合を提供します。
//
// 等価判定とハッシュは呼び出し側が関数で与えます。Set は並行アクセスに対して
// 安全ではありません。必要なら呼び出し側で 1 つの Mutex で保護してください。
package lruset

import (
	"fmt"
	"iter"

	"github.com/amakane-hakari/lruset/internal/metrics"
)

// Set は容量固定の LRU 集合を表します。
type Set[T any] struct {
	cfg      Config
	capacity int

	arena   *arena[T]
	index   *bucketIndex[T]
	recency *recencyList[T]
}

// New は新しい Set を作成します。
// capacity が負、または equal / hash が nil の場合は panic します。
// capacity 0 は有効で、何も保持しない集合になります。
func New[T any](capacity int, equal EqualFunc[T], hash HashFunc[T], opts ...Option) *Set[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("lruset: negative capacity %d", capacity))
	}
	if equal == nil || hash == nil {
		panic("lruset: equal and hash must not be nil")
	}
	cfg := Config{Metrics: metrics.Noop{}}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.Noop{}
	}

	a := newArena[T](min(capacity, 1024))
	return &Set[T]{
		cfg:      cfg,
		capacity: capacity,
		arena:    a,
		index:    newBucketIndex(a, equal, hash),
		recency:  newRecencyList(a),
	}
}

// Add は値を集合に追加します。
//
// 等しい値が既にあれば、保持している値の使用順を最新に更新するだけで OutcomeNone を返します（Refreshed = true）。
// 満杯なら最も古い値を追い出して OutcomeEvicted とその値を返します。
// 容量 0 の場合は何もせず OutcomeRejected と value をそのまま返します。
func (s *Set[T]) Add(value T) AddResult[T] {
	if s.capacity == 0 {
		s.cfg.Metrics.IncRejected()
		if s.cfg.Logger != nil {
			s.cfg.Logger.Debug("lruset.reject", "set", s.cfg.Name, "value", value)
		}
		return AddResult[T]{Outcome: OutcomeRejected, Value: value}
	}

	i, h, found := s.index.lookup(value)
	if found {
		s.recency.markMostRecent(i)
		s.cfg.Metrics.IncAddUpdate()
		if s.cfg.Logger != nil {
			s.cfg.Logger.Debug("lruset.update", "set", s.cfg.Name, "value", value)
		}
		return AddResult[T]{Outcome: OutcomeNone, Refreshed: true}
	}

	var res AddResult[T]
	if s.recency.len >= s.capacity {
		victim := s.recency.evictLeastRecent()
		s.index.removeEntry(victim)
		res = AddResult[T]{Outcome: OutcomeEvicted, Value: s.arena.at(victim).value}
		s.arena.release(victim)
		s.cfg.Metrics.AddEvicted(1)
		if s.cfg.Logger != nil {
			s.cfg.Logger.Debug("lruset.evict", "set", s.cfg.Name, "victim", res.Value)
		}
	}

	i = s.arena.alloc(value, h)
	s.index.insert(i)
	s.recency.markMostRecent(i)

	s.cfg.Metrics.IncAddNew()
	s.cfg.Metrics.SetSize(s.recency.len)
	if s.cfg.Logger != nil {
		s.cfg.Logger.Debug("lruset.add", "set", s.cfg.Name, "value", value, "size", s.recency.len)
	}
	return res
}

// Has は等しい値が集合にあるかを返します。使用順は更新しません。
func (s *Set[T]) Has(value T) bool {
	_, _, found := s.index.lookup(value)
	if found {
		s.cfg.Metrics.IncHasHit()
	} else {
		s.cfg.Metrics.IncHasMiss()
	}
	return found
}

// Remove は等しい値を集合から削除し、保持していた値を返します。
func (s *Set[T]) Remove(value T) (T, bool) {
	i, _, found := s.index.lookup(value)
	if !found {
		var zero T
		return zero, false
	}
	stored := s.arena.at(i).value
	s.index.removeEntry(i)
	s.recency.remove(i)
	s.arena.release(i)

	s.cfg.Metrics.IncRemoved()
	s.cfg.Metrics.SetSize(s.recency.len)
	if s.cfg.Logger != nil {
		s.cfg.Logger.Debug("lruset.remove", "set", s.cfg.Name, "value", stored)
	}
	return stored, true
}

// Oldest は次に追い出される値を返します。使用順は更新しません。
func (s *Set[T]) Oldest() (T, bool) {
	i := s.recency.peekLeastRecent()
	if i == sentinel {
		var zero T
		return zero, false
	}
	return s.arena.at(i).value, true
}

// Size は現在の要素数を返します。
func (s *Set[T]) Size() int {
	return s.recency.len
}

// Cap は容量を返します。
func (s *Set[T]) Cap() int {
	return s.capacity
}

// Clear はすべての要素を削除します。容量は変わりません。
func (s *Set[T]) Clear() {
	removed := s.recency.len
	s.index.reset()
	s.recency.reset()
	s.arena.reset()

	s.cfg.Metrics.AddCleared(removed)
	s.cfg.Metrics.SetSize(0)
	if s.cfg.Logger != nil {
		s.cfg.Logger.Info("lruset.clear", "set", s.cfg.Name, "removed", removed)
	}
}

// Each は各要素に対して visit を古い順に 1 回ずつ呼び、呼んだ回数を返します。
// visit の中で Set を変更してはいけません。
func (s *Set[T]) Each(visit func(T)) int {
	n := 0
	for v := range s.All() {
		visit(v)
		n++
	}
	return n
}

// All は要素を古い順に返すイテレータです。
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.arena.at(sentinel).next; i != sentinel; {
			e := s.arena.at(i)
			next := e.next
			if !yield(e.value) {
				return
			}
			i = next
		}
	}
}
