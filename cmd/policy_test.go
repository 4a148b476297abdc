package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHyperParamsBundle_ParsesKnownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
method: steepest_decent
e0: 0.5
e1: 1e-6
rp: 0.02
max_iteration: 50
max_length: 8
`), 0o644))

	bundle, err := LoadHyperParamsBundle(path)
	require.NoError(t, err)

	assert.Equal(t, "steepest_decent", bundle.Method)
	assert.Equal(t, 0.5, bundle.E0)
	assert.Equal(t, 1e-6, bundle.E1)
	assert.Equal(t, 0.02, bundle.Rp)
	assert.Equal(t, 50, bundle.MaxIteration)
	assert.Equal(t, 8, bundle.MaxLength)
}

func TestLoadHyperParamsBundle_RejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("methood: bfgs\n"), 0o644))

	_, err := LoadHyperParamsBundle(path)
	assert.Error(t, err)
}

func TestLoadHyperParamsBundle_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadHyperParamsBundle(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
