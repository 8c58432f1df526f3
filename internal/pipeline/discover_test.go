package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nsisSpec = ToolSpec{Name: "makensis.exe", AltNames: []string{"makensis"}, EnvVar: "MAKENSIS_PATH"}

func finderWith(env map[string]string, onPath map[string]string) Finder {
	return Finder{
		LookupEnv: func(k string) (string, bool) { v, ok := env[k]; return v, ok },
		LookPath: func(name string) (string, error) {
			if p, ok := onPath[name]; ok {
				return p, nil
			}
			return "", errors.New("not found")
		},
		Stat: os.Stat,
	}
}

func TestFindTool_OverrideWins(t *testing.T) {
	tool := filepath.Join(t.TempDir(), "makensis.exe")
	writeFileAt(t, tool, "x", time.Now())
	got, err := finderWith(map[string]string{"MAKENSIS_PATH": tool}, map[string]string{"makensis.exe": "/usr/bin/makensis.exe"}).FindTool(nsisSpec)
	require.NoError(t, err)
	assert.Equal(t, tool, got)
}

func TestFindTool_MissingOverrideFallsBackToPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.exe")
	got, err := finderWith(map[string]string{"MAKENSIS_PATH": missing}, map[string]string{"makensis.exe": "/opt/nsis/makensis.exe"}).FindTool(nsisSpec)
	require.NoError(t, err)
	assert.Equal(t, "/opt/nsis/makensis.exe", got)
}

func TestFindTool_AltName(t *testing.T) {
	got, err := finderWith(nil, map[string]string{"makensis": "/usr/bin/makensis"}).FindTool(nsisSpec)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/makensis", got)
}

func TestFindTool_DirectoryOverrideIgnored(t *testing.T) {
	_, err := finderWith(map[string]string{"MAKENSIS_PATH": t.TempDir()}, nil).FindTool(nsisSpec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolNotFound))
}

func TestFindTool_NotFoundHints(t *testing.T) {
	_, err := finderWith(map[string]string{"MAKENSIS_PATH": "/nowhere/makensis.exe"}, nil).FindTool(nsisSpec)
	require.Error(t, err)
	assert.Equal(t, "Error: makensis.exe not found", err.Error())
	var pe *Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []string{
		"Please install NSIS from https://nsis.sourceforge.io/",
		"MAKENSIS_PATH is set to: /nowhere/makensis.exe",
	}, pe.Hint())
	assert.Equal(t, StepDiscoverTool, pe.Step)
}
