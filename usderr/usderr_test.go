package usderr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCarriesKind(t *testing.T) {
	err := New(FormatMismatch, "bad magic %q", "NOPE")
	require.True(t, Is(err, FormatMismatch))
	require.False(t, Is(err, IO))
	require.Contains(t, err.Error(), "format_mismatch")
	require.Contains(t, err.Error(), "NOPE")
}

func TestWrapPreservesUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(IO, cause)
	require.True(t, Is(err, IO))
	require.True(t, errors.Is(err, cause))
}

func TestWrapNilReturnsNil(t *testing.T) {
	require.NoError(t, Wrap(IO, nil))
}

func TestErrorAsRecoversKind(t *testing.T) {
	err := fmt.Errorf("context: %w", New(Cycle, "depth exceeded at %s", "/a/b/c"))

	var target *Error
	require.True(t, errors.As(err, &target))
	require.Equal(t, Cycle, target.Kind())
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		IO:             "io",
		Parse:          "parse",
		Cycle:          "cycle",
		FormatMismatch: "format_mismatch",
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.String())
	}
}
