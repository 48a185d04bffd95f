package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHasNoCause(t *testing.T) {
	err := New("seek", BeyondEnd)
	require.EqualError(t, err, "seek: beyond end")

	var ae *AccessError
	require.True(t, errors.As(err, &ae))
	require.Nil(t, ae.Cause)
}

func TestWrapReturnsNilForNilCause(t *testing.T) {
	require.Nil(t, Wrap("grow", OutOfMemory, nil))
}

func TestWrapPreservesCauseForUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap("grow", OutOfMemory, cause)
	require.ErrorIs(t, err, cause)
}

func TestWrapHostClassifiesAsHostError(t *testing.T) {
	cause := errors.New("permission denied")
	err := WrapHost("open file", cause)

	status, ok := StatusOf(err)
	require.True(t, ok)
	require.Equal(t, HostError, status)
	require.ErrorIs(t, err, cause)
}

func TestStatusOfReportsFalseForPlainError(t *testing.T) {
	_, ok := StatusOf(errors.New("plain"))
	require.False(t, ok)
}

func TestStatusOfUnwrapsThroughFmtErrorf(t *testing.T) {
	inner := New("read", InvalidReadData)
	wrapped := fmt.Errorf("context: %w", inner)

	status, ok := StatusOf(wrapped)
	require.True(t, ok)
	require.Equal(t, InvalidReadData, status)
}
