package basex

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

var ErrResult = errors.New("result error")

type Tag string

const (
	TagSuccess Tag = "success"
	TagError   Tag = "error"
)

func (t Tag) String() string {
	return string(t)
}

type resultErr struct {
	err error
}

func (e resultErr) Error() string {
	return e.err.Error()
}

func (e resultErr) Unwrap() []error {
	return []error{ErrResult, e.err}
}

// Result is either a T value or an error, never both.
// The tag is derived from which side is set.
type Result[T any] struct {
	v   T
	err error
}

func (r Result[T]) Tag() Tag {
	if r.err != nil {
		return TagError
	}
	return TagSuccess
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) IsErr() bool {
	return r.err != nil
}

func (r Result[T]) Get() (T, error) {
	return r.v, r.err
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Must() T {
	if r.err != nil {
		panic(resultErr{err: r.err})
	}

	return r.v
}

// Unpack returns the (tag, payload) pair. The payload is the T value for
// TagSuccess and the error for TagError.
func (r Result[T]) Unpack() (Tag, any) {
	if r.err != nil {
		return TagError, r.err
	}
	return TagSuccess, r.v
}

func (r Result[T]) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	tag, payload := r.Unpack()
	_, _ = buf.WriteString(tag.String())
	_ = buf.WriteByte(' ')
	_, _ = fmt.Fprint(buf, payload)

	return buf.String()
}

// MarshalJSON encodes r as a two element array: ["success", value] or
// ["error", message].
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		return sonic.Marshal([2]any{TagError, r.err.Error()})
	}
	return sonic.Marshal([2]any{TagSuccess, r.v})
}

func Match[T, R any](r Result[T], onOk func(T) R, onErr func(error) R) R {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.v)
}

// ResultError always yields the error variant; a nil err is replaced by ErrResult.
func ResultError[T any](err error) Result[T] {
	if err == nil {
		err = ErrResult
	}
	return Result[T]{
		err: err,
	}
}

func ResultOk[T any](t T) Result[T] {
	return Result[T]{
		v: t,
	}
}

func ResultTuple[T any](t T, err error) Result[T] {
	if err != nil {
		return ResultError[T](err)
	}
	return ResultOk(t)
}
