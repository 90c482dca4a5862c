package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_WritesRotatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger(dir, false)
	require.NoError(t, err)

	logger.Info("kitchen open")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "bistro-boss.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"kitchen open"`)
}

func TestInitLogger_StdoutOnly(t *testing.T) {
	logger, err := InitLogger("", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))
}
