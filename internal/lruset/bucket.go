package lruset

// bucketIndex はハッシュ値からエントリのインデックス列を引く索引です。
// 同じバケット内は EqualFunc で区別します。
type bucketIndex[T any] struct {
	a       *arena[T]
	equal   EqualFunc[T]
	hash    HashFunc[T]
	buckets map[uint64][]int
}

func newBucketIndex[T any](a *arena[T], equal EqualFunc[T], hash HashFunc[T]) *bucketIndex[T] {
	return &bucketIndex[T]{
		a:       a,
		equal:   equal,
		hash:    hash,
		buckets: make(map[uint64][]int),
	}
}

// lookup は value と等しいエントリを探します。
// 見つからない場合も計算済みのハッシュ値を返します（挿入時に再利用する）。
func (b *bucketIndex[T]) lookup(value T) (idx int, h uint64, ok bool) {
	h = b.hash(value)
	for _, i := range b.buckets[h] {
		if b.equal(b.a.at(i).value, value) {
			return i, h, true
		}
	}
	return detached, h, false
}

func (b *bucketIndex[T]) insert(i int) {
	h := b.a.at(i).hash
	b.buckets[h] = append(b.buckets[h], i)
}

func (b *bucketIndex[T]) removeEntry(i int) {
	h := b.a.at(i).hash
	bucket := b.buckets[h]
	for j, x := range bucket {
		if x != i {
			continue
		}
		last := len(bucket) - 1
		bucket[j] = bucket[last]
		bucket = bucket[:last]
		if len(bucket) == 0 {
			delete(b.buckets, h)
		} else {
			b.buckets[h] = bucket
		}
		return
	}
}

func (b *bucketIndex[T]) reset() {
	clear(b.buckets)
}
