package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		wantLevel   zerolog.Level
		wantFormat  string
		errContains string
	}{
		{name: "defaults", wantLevel: zerolog.WarnLevel, wantFormat: "console"},
		{name: "debug json", level: "debug", format: "json", wantLevel: zerolog.DebugLevel, wantFormat: "json"},
		{name: "upper case level", level: "INFO", wantLevel: zerolog.InfoLevel, wantFormat: "console"},
		{name: "bad level", level: "loud", errContains: "invalid log level"},
		{name: "bad format", format: "xml", errContains: "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig(tt.level, tt.format)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, cfg.Level)
			assert.Equal(t, tt.wantFormat, cfg.Format)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("mode", "dark").Msg("changed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"mode":"dark"`)
	assert.Contains(t, out, `"message":"changed"`)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "console"}, &buf)

	logger.Debug().Str("mode", "light").Msg("changed")
	assert.Contains(t, buf.String(), "mode=light")
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json"}, &buf)

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "watch")
	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"watch"`)
}

func TestFromContext_Empty(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
