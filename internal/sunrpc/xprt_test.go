package sunrpc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXprtLookup(t *testing.T) {
	_, h := fakeMount(t)
	fakeSwitch(t, h)

	t.Run("finds xprt across switches", func(t *testing.T) {
		x, err := h.Xprt("xprt-1-tcp")
		require.NoError(t, err)
		require.Equal(t, "xprt-1-tcp", x.Name)
		require.Equal(t, "switch-0", x.Switch)
	})

	t.Run("unknown xprt", func(t *testing.T) {
		_, err := h.Xprt("xprt-7-tcp")
		require.ErrorContains(t, err, "no such xprt")
	})

	t.Run("malformed name is rejected before any lookup", func(t *testing.T) {
		_, err := h.Xprt("dstaddr")
		require.ErrorContains(t, err, "not an xprt name")
	})
}

func TestXprtAttributes(t *testing.T) {
	_, h := fakeMount(t)
	fakeSwitch(t, h)

	main, err := h.Xprt("xprt-0-tcp")
	require.NoError(t, err)

	t.Run("dstaddr round trip", func(t *testing.T) {
		addr, err := main.DstAddr()
		require.NoError(t, err)
		require.Equal(t, "192.168.1.5:2049", addr)

		require.NoError(t, main.SetDstAddr("192.168.1.9:2049"))
		addr, err = main.DstAddr()
		require.NoError(t, err)
		require.Equal(t, "192.168.1.9:2049", addr)

		require.ErrorContains(t, main.SetDstAddr(""), "must not be empty")
	})

	t.Run("state flags", func(t *testing.T) {
		flags, err := main.State()
		require.NoError(t, err)
		require.Equal(t, []string{"connected", "bound"}, flags)
	})

	t.Run("state changes accept the kernel verbs only", func(t *testing.T) {
		second, err := h.Xprt("xprt-1-tcp")
		require.NoError(t, err)

		require.NoError(t, second.SetState(StateOnline))
		raw, err := readAttr(second.path, "xprt_state")
		require.NoError(t, err)
		require.Equal(t, "online", raw)

		require.ErrorContains(t, second.SetState("connected"), "invalid xprt state")
	})

	t.Run("info fields", func(t *testing.T) {
		info, err := main.Info()
		require.NoError(t, err)
		require.True(t, info.Main)
		require.Equal(t, 810, info.SrcPort)
		require.Equal(t, 2049, info.DstPort)

		second, err := h.Xprt("xprt-1-tcp")
		require.NoError(t, err)
		info, err = second.Info()
		require.NoError(t, err)
		require.False(t, info.Main)
	})
}
