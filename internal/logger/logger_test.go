package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"development", "production", ""} {
		l, err := New(mode, "debug")
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("development", "chatty")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	l := NewNop().With("session", "abc")
	assert.NotPanics(t, func() {
		l.Debug("candidates", "count", 3)
		l.Info("ok")
		l.Warn("warn")
		l.Error("err")
		l.Sync()
	})
}
