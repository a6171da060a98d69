package lruset

// recencyList は番兵の next = 最も古い（victim）, prev = 最近使用 の循環リストです。
type recencyList[T any] struct {
	a   *arena[T]
	len int
}

func newRecencyList[T any](a *arena[T]) *recencyList[T] {
	return &recencyList[T]{a: a}
}

func (l *recencyList[T]) linked(i int) bool {
	return l.a.at(i).next != detached
}

func (l *recencyList[T]) unlink(i int) {
	e := l.a.at(i)
	l.a.at(e.prev).next = e.next
	l.a.at(e.next).prev = e.prev
	e.prev, e.next = detached, detached
	l.len--
}

func (l *recencyList[T]) pushBack(i int) {
	s := l.a.at(sentinel)
	tail := s.prev
	e := l.a.at(i)
	e.prev, e.next = tail, sentinel
	l.a.at(tail).next = i
	s.prev = i
	l.len++
}

// markMostRecent はエントリを末尾（最近使用）へ移動します。
// 未リンクのエントリはそのまま末尾へ追加します。
func (l *recencyList[T]) markMostRecent(i int) {
	if l.linked(i) {
		if l.a.at(sentinel).prev == i {
			return
		}
		l.unlink(i)
	}
	l.pushBack(i)
}

// evictLeastRecent は先頭（最も古い）エントリを外してインデックスを返します。
// 空のリストで呼んではいけません。
func (l *recencyList[T]) evictLeastRecent() int {
	i := l.a.at(sentinel).next
	l.unlink(i)
	return i
}

// peekLeastRecent は先頭のインデックスを返します。空なら sentinel です。
func (l *recencyList[T]) peekLeastRecent() int {
	return l.a.at(sentinel).next
}

func (l *recencyList[T]) remove(i int) {
	if l.linked(i) {
		l.unlink(i)
	}
}

func (l *recencyList[T]) reset() {
	l.len = 0
}
