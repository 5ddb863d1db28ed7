package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogUsableBeforeSetup(t *testing.T) {
	assert.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Info("startup message", "key", "value")
		Warn("warn message")
		Error("error message", "err", "detail")
		Debug("debug message")
	})
}

func TestSetupReplacesHandler(t *testing.T) {
	before := Log
	Setup("test")
	assert.NotNil(t, Log)
	assert.NotSame(t, before, Log)
}
