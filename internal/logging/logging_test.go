package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("DEBUG", false).GetLevel())
	assert.Equal(t, zerolog.WarnLevel, New("warn", true).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("", false).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("verbose", false).GetLevel())
}
