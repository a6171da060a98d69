package lruset

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// StringHash は文字列の xxhash を返します。
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// BytesHash はバイト列の xxhash を返します。
func BytesHash(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// BytesEqual は BytesHash と組み合わせる EqualFunc です。
func BytesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// IntHash は整数をそのままハッシュ値として使います。
func IntHash(n int) uint64 {
	return uint64(n)
}

// Uint64Hash は IntHash の uint64 版です。
func Uint64Hash(n uint64) uint64 {
	return n
}

// ConstHash はすべての値を同じバケットに入れます。
// 等価判定しかできない型や、衝突時の動作確認に使います。
func ConstHash[T any](T) uint64 {
	return 0
}

// Comparable は == で比較する EqualFunc を返します。
func Comparable[T comparable]() EqualFunc[T] {
	return func(a, b T) bool { return a == b }
}

