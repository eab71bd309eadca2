package testutils

import "github.com/stretchr/testify/mock"

// Ret returns the i-th configured return value of a mocked call, or the zero
// value of T when it was set to nil.
func Ret[T any](args mock.Arguments, i int) T {
	var zero T
	v := args.Get(i)
	if v == nil {
		return zero
	}

	return v.(T)
}

// TestingT is what the mock constructors need from *testing.T.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}
