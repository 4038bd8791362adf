package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	err := New(AlreadyExists, "Name %s already taken", "foo")
	require.Equal(t, "Name foo already taken", Message(err, "fallback"))

	wrapped := fmt.Errorf("create: %w", err)
	require.Equal(t, "Name foo already taken", Message(wrapped, "fallback"))
	require.True(t, Is(wrapped, AlreadyExists))
	require.False(t, Is(wrapped, NotFound))

	require.Equal(t, "fallback", Message(errors.New("dial tcp: refused"), "fallback"))
	require.Equal(t, "fallback", Message(Error{Code: BadRequest}, "fallback"))
}
