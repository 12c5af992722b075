package serrors_test

import (
	"errors"
	"fmt"
	"mca/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "funding %s not found", "f-1")
	require.Equal(t, "funding f-1 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "loading funding")
	require.Equal(t, "loading funding: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrConflict)
	require.Equal(t, "CONFLICT", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrConflict)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrConflict, base, "payback already settled")
	require.Equal(t, serrors.ErrConflict, e.Kind())
	require.Equal(t, "payback already settled", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOfAndIsPermanent(t *testing.T) {
	wrapped := fmt.Errorf("could not record payback: %w", serrors.With(serrors.ErrConflict, "settled"))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(wrapped))
	require.True(t, serrors.IsPermanent(wrapped))

	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.False(t, serrors.IsPermanent(errors.New("plain")))
	require.False(t, serrors.IsPermanent(serrors.KindOnly(serrors.ErrUnavailable)))
}
