package hxpipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxkit/hxkit/pkg/htmx"
	"github.com/hxkit/hxkit/pkg/hxpipe"
)

func TestArgsField(t *testing.T) {
	t.Parallel()

	t.Run("scalar payload is position zero", func(t *testing.T) {
		t.Parallel()

		args := hxpipe.NewArgs("#main")

		val, ok := args.Field("select", 0)
		require.True(t, ok)
		assert.Equal(t, "#main", val)

		_, ok = args.Field("select", 1)
		assert.False(t, ok)
	})

	t.Run("list payload resolves by position", func(t *testing.T) {
		t.Parallel()

		args := hxpipe.NewArgs([]any{"settle", "pollMsg"})

		val, ok := args.Field("after", 0)
		require.True(t, ok)
		assert.Equal(t, "settle", val)

		val, ok = args.Field("events", 1)
		require.True(t, ok)
		assert.Equal(t, "pollMsg", val)
	})

	t.Run("map payload resolves by keyword", func(t *testing.T) {
		t.Parallel()

		args := hxpipe.NewArgs(map[string]any{"events": "pollMsg"})

		val, ok := args.Field("events", 1)
		require.True(t, ok)
		assert.Equal(t, "pollMsg", val)

		_, ok = args.Field("after", 0)
		assert.False(t, ok)
	})

	t.Run("nil payload has no fields", func(t *testing.T) {
		t.Parallel()

		args := hxpipe.NewArgs(nil)

		assert.True(t, args.IsZero())
		_, ok := args.Field("anything", 0)
		assert.False(t, ok)
	})
}

func TestArgsStringField(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-string values", func(t *testing.T) {
		t.Parallel()

		args := hxpipe.NewArgs(map[string]any{"select": 42})

		_, ok := args.StringField("select", 0)
		assert.False(t, ok)
	})
}

func TestArgsSpecField(t *testing.T) {
	t.Parallel()

	t.Run("string becomes token string", func(t *testing.T) {
		t.Parallel()

		args := hxpipe.NewArgs(map[string]any{"events": "foo,bar"})

		spec, err := args.SpecField("events", 1)
		require.NoError(t, err)
		assert.Equal(t, htmx.TokenString("foo,bar"), spec)
	})

	t.Run("list becomes token list", func(t *testing.T) {
		t.Parallel()

		args := hxpipe.NewArgs(map[string]any{"events": []any{"foo", "bar"}})

		spec, err := args.SpecField("events", 1)
		require.NoError(t, err)
		assert.Equal(t, htmx.TokenList{"foo", "bar"}, spec)
	})

	t.Run("map becomes event map", func(t *testing.T) {
		t.Parallel()

		payload := map[string]any{"reload": map[string]any{"target": "#x"}}
		args := hxpipe.NewArgs(map[string]any{"events": payload})

		spec, err := args.SpecField("events", 1)
		require.NoError(t, err)
		assert.Equal(t, htmx.EventMap(payload), spec)
	})

	t.Run("absent field is a nil spec", func(t *testing.T) {
		t.Parallel()

		spec, err := hxpipe.NewArgs(nil).SpecField("events", 1)
		require.NoError(t, err)
		assert.Nil(t, spec)
	})

	t.Run("unsupported type is an error", func(t *testing.T) {
		t.Parallel()

		args := hxpipe.NewArgs(map[string]any{"events": 3.14})

		_, err := args.SpecField("events", 1)
		assert.ErrorIs(t, err, htmx.ErrInvalidTriggerSpec)
	})
}
