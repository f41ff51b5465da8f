package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSONFile(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})
	path := filepath.Join(t.TempDir(), "pit.log")
	require.NoError(t, Setup(LogConfig{Level: "warn", Format: "json", Output: path}))

	l := WithComponent("test")
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"component":"test"`)
	assert.True(t, strings.Contains(out, `"message":"shown"`))
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Setup(LogConfig{Level: "loud", Format: "json", Output: "stderr"}))
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, &log.Logger, FromContext(context.Background()))
	l := WithRequestID("abc")
	ctx := Into(context.Background(), l)
	assert.NotEqual(t, &log.Logger, FromContext(ctx))
}
