package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_LevelFollowsVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug("hidden")
	log.Info("shown")
	_ = log.Sync()
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "INFO")

	buf.Reset()
	log = New(&buf, true)
	log.Debug("detail")
	_ = log.Sync()
	assert.Contains(t, buf.String(), "detail")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestFromEnv(t *testing.T) {
	var buf bytes.Buffer
	unset := func(string) (string, bool) { return "", false }
	log := FromEnv(&buf, DebugEnv, unset)
	log.Info("quiet")
	assert.Empty(t, buf.String())

	set := func(string) (string, bool) { return "1", true }
	log = FromEnv(&buf, DebugEnv, set)
	log.Debug("loud")
	_ = log.Sync()
	assert.Contains(t, buf.String(), "loud")
}
