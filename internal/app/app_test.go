package app

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/8thgencore/blip/pkg/extension"
	"github.com/8thgencore/blip/pkg/lime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T, to string) *App {
	t.Helper()
	a, err := New("", to, io.Discard)
	require.NoError(t, err)

	return a
}

func TestApp(t *testing.T) {
	t.Run("Build applies destination override", func(t *testing.T) {
		a := setupTest(t, "postmaster@crm.msging.net")

		cmd, err := a.Build(lime.MethodGet, "/contacts", nil, extension.WithID("1"))
		require.NoError(t, err)
		assert.Equal(t, "postmaster@crm.msging.net", cmd.To)
		assert.Equal(t, "1", cmd.ID)
	})

	t.Run("Build every method", func(t *testing.T) {
		a := setupTest(t, "")

		for _, method := range []lime.Method{lime.MethodGet, lime.MethodSet, lime.MethodMerge, lime.MethodDelete} {
			cmd, err := a.Build(method, "/resources/a", "x")
			require.NoError(t, err)
			assert.Equal(t, method, cmd.Method)
		}
	})

	t.Run("Build unsupported method", func(t *testing.T) {
		a := setupTest(t, "")

		_, err := a.Build(lime.MethodObserve, "/x", nil)
		assert.ErrorIs(t, err, ErrUnsupportedMethod)
	})

	t.Run("Process round trip", func(t *testing.T) {
		a := setupTest(t, "")

		set, err := a.Build(lime.MethodSet, "/resources/a", "hello", extension.WithType("text/plain"))
		require.NoError(t, err)
		resp, err := a.Process(context.Background(), set)
		require.NoError(t, err)
		assert.True(t, resp.IsSuccess())

		get, err := a.Build(lime.MethodGet, "/resources/a", nil)
		require.NoError(t, err)
		resp, err = a.Process(context.Background(), get)
		require.NoError(t, err)
		assert.Equal(t, "hello", resp.Resource)
	})

	t.Run("Process canceled", func(t *testing.T) {
		a := setupTest(t, "")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := a.Process(ctx, a.Base().GetCommand("/x"))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Process nil command", func(t *testing.T) {
		a := setupTest(t, "")

		var resp *lime.Command
		var err error
		assert.NotPanics(t, func() { resp, err = a.Process(context.Background(), nil) })
		assert.ErrorIs(t, err, extension.ErrNilCommand)
		assert.Nil(t, resp)
	})

	t.Run("Print", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Print(&buf, &lime.Command{ID: "1", Method: lime.MethodGet, URI: "/x"}))
		assert.JSONEq(t, `{"id":"1","method":"get","uri":"/x"}`, buf.String())
	})
}
