package lime

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	first := NewID()
	second := NewID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestMethodValid(t *testing.T) {
	assert.True(t, MethodGet.Valid())
	assert.True(t, MethodMerge.Valid())
	assert.False(t, Method("GET").Valid())
	assert.False(t, Method("").Valid())
}

func TestCommandJSON(t *testing.T) {
	cmd := NewCommand(MethodSet, "/contacts")
	cmd.ID = "1"
	cmd.Type = "text/plain"
	cmd.Resource = "hello"

	data, err := json.Marshal(cmd)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","method":"set","uri":"/contacts","type":"text/plain","resource":"hello"}`, string(data))
}

func TestCommandErr(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cmd := &Command{ID: "1", Status: StatusSuccess}
		assert.True(t, cmd.IsSuccess())
		assert.NoError(t, cmd.Err())
	})

	t.Run("failure with reason", func(t *testing.T) {
		cmd := &Command{ID: "1", Status: StatusFailure, Reason: &Reason{Code: ReasonCommandResourceNotFound, Description: "not found"}}

		var reasonErr *ReasonError
		require.True(t, errors.As(cmd.Err(), &reasonErr))
		assert.Equal(t, ReasonCommandResourceNotFound, reasonErr.Reason.Code)
		assert.Equal(t, "command 1 failed: not found (code 67)", reasonErr.Error())
	})

	t.Run("failure without reason", func(t *testing.T) {
		cmd := &Command{ID: "2", Status: StatusFailure}

		var reasonErr *ReasonError
		require.True(t, errors.As(cmd.Err(), &reasonErr))
		assert.Equal(t, ReasonGeneralError, reasonErr.Reason.Code)
	})
}
