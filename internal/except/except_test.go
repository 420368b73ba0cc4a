package except

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMust(t *testing.T) {
	t.Run("no-op", func(t *testing.T) {
		Must(true, "ok")
	})

	t.Run("panic", func(t *testing.T) {
		require.Panics(t, func() {
			Must(false, "panic")
		})
	})
}

func TestErrAttr(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		attr := ErrAttr(nil)
		assert.Equal(t, slog.KindGroup, attr.Value.Kind())
	})

	t.Run("non-nil error", func(t *testing.T) {
		attr := ErrAttr(errors.New("boom"))
		assert.Equal(t, "boom", attr.Value.String())
	})
}
