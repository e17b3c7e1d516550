package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	owner := "sam"
	tracker := "github"
	want := Build("MyApp", UnitStoryPoints, []string{"auth"})
	want.Modules[0].Owner = &owner
	want.ApprovalGatesEnabled = true
	want.ExternalTracker = &tracker

	data, err := yaml.Marshal(want)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), data, 0o644))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not: [valid"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
