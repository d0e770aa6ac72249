package optional

import (
	"github.com/Blackdeer1524/chainhash/src/pkg/assert"
)

type tag uint8

const (
	noneTag tag = iota
	someTag
)

// Optional holds either a value or nothing. The zero Optional is None.
type Optional[T any] struct {
	tag   tag
	value T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{
		tag:   someTag,
		value: value,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (opt Optional[T]) IsSome() bool {
	return opt.tag == someTag
}

func (opt Optional[T]) IsNone() bool {
	return opt.tag == noneTag
}

// Get returns the value and whether it is present.
func (opt Optional[T]) Get() (T, bool) {
	return opt.value, opt.tag == someTag
}

func (opt Optional[T]) OrElse(fallback T) T {
	if opt.tag == noneTag {
		return fallback
	}

	return opt.value
}

func (opt Optional[T]) Expect(msg string) T {
	assert.Assert(opt.tag == someTag, msg)
	return opt.value
}

func (opt Optional[T]) Unwrap() T {
	assert.Assert(opt.tag == someTag, "unwrap of an empty optional")
	return opt.value
}
