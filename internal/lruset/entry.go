package lruset

// sentinel は循環リストの番兵のインデックスです。
const sentinel = 0

// detached はどのリストにも繋がっていないことを表します。
const detached = -1

type entry[T any] struct {
	value T
	hash  uint64
	prev  int
	next  int
}

// arena はエントリを安定したインデックスで保持します。
// nodes[0] は番兵で、値を持ちません。
type arena[T any] struct {
	nodes []entry[T]
	free  []int
}

func newArena[T any](hint int) *arena[T] {
	a := &arena[T]{nodes: make([]entry[T], 1, hint+1)}
	a.nodes[sentinel].prev = sentinel
	a.nodes[sentinel].next = sentinel
	return a
}

// alloc は未リンク状態のエントリを確保してインデックスを返します。
func (a *arena[T]) alloc(value T, hash uint64) int {
	e := entry[T]{value: value, hash: hash, prev: detached, next: detached}
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[i] = e
		return i
	}
	a.nodes = append(a.nodes, e)
	return len(a.nodes) - 1
}

// release はエントリを解放し、値の参照を外します。
func (a *arena[T]) release(i int) {
	a.nodes[i] = entry[T]{prev: detached, next: detached}
	a.free = append(a.free, i)
}

func (a *arena[T]) at(i int) *entry[T] {
	return &a.nodes[i]
}

func (a *arena[T]) reset() {
	clear(a.nodes[1:])
	a.nodes = a.nodes[:1]
	a.nodes[sentinel].prev = sentinel
	a.nodes[sentinel].next = sentinel
	a.free = a.free[:0]
}
