package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestConfigureWritesJSONAndFiltersLevel(t *testing.T) {
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })

	var output bytes.Buffer
	Configure(&output, "warn", false)

	log.Info().Msg("hidden")
	log.Warn().Str("component", "test").Msg("visible")

	rendered := output.String()
	assert.NotContains(t, rendered, "hidden")
	assert.Contains(t, rendered, `"message":"visible"`)
	assert.Contains(t, rendered, `"service":"mesflow"`)
	assert.Contains(t, rendered, `"component":"test"`)
}
