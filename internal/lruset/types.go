package lruset

// EqualFunc は 2 つの値が同じメンバーかを判定します。同値関係である必要があります。
type EqualFunc[T any] func(a, b T) bool

// HashFunc は値のハッシュ値を返します。
// EqualFunc で等しい値は必ず同じハッシュ値を返す必要があります。
type HashFunc[T any] func(v T) uint64

// Outcome は Add の結果の種類です。
type Outcome uint8

const (
	// OutcomeNone は追い出しが発生しなかったことを表します（新規追加または既存の更新）。
	OutcomeNone Outcome = iota
	// OutcomeEvicted は容量超過のため最も古い値を追い出したことを表します。
	OutcomeEvicted
	// OutcomeRejected は容量 0 のため値を受け付けなかったことを表します。
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeEvicted:
		return "evicted"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// AddResult は Add の結果です。
// Outcome が OutcomeEvicted なら Value は追い出された値、
// OutcomeRejected なら Value は渡された値そのものです。
// Refreshed は等しい値が既にあり、使用順だけを更新した場合に true です。
type AddResult[T any] struct {
	Outcome   Outcome
	Value     T
	Refreshed bool
}

// Evicted は追い出された値を返します。
func (r AddResult[T]) Evicted() (T, bool) {
	if r.Outcome != OutcomeEvicted {
		var zero T
		return zero, false
	}
	return r.Value, true
}

// Rejected は拒否された値を返します。
func (r AddResult[T]) Rejected() (T, bool) {
	if r.Outcome != OutcomeRejected {
		var zero T
		return zero, false
	}
	return r.Value, true
}
