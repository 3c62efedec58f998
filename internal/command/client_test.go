package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientShow(t *testing.T) {
	h := fakeTree(t)
	spec := NewClientCommand()

	t.Run("lists clients with their switch", func(t *testing.T) {
		out, err := runSpec(t, spec, h, "show")
		require.NoError(t, err)
		assert.Contains(t, out, "clnt-6: switch-0")
	})

	t.Run("single client by name", func(t *testing.T) {
		out, err := runSpec(t, spec, h, "show", "clnt-6")
		require.NoError(t, err)
		assert.Equal(t, "clnt-6: switch-0\n", out)
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := runSpec(t, spec, h, "show", "clnt-99")
		require.ErrorContains(t, err, "no such client")
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := runSpec(t, spec, h, "list")
		require.ErrorContains(t, err, "unknown action")
	})

	t.Run("empty tree lists nothing", func(t *testing.T) {
		out, err := runSpec(t, spec, fakeHandle(t), "show")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
