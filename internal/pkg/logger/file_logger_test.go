//go:build unit
// +build unit

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger_WritesJSONRecords(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "scrimhub.log")

	log := NewFileLogger(config.LogLevelWarning, logPath, 10, 3, 28)
	require.NotNil(t, log)

	log.Info("skipped below level")
	log.Warn("wallet ", "w-1", " low balance")
	log.Error("refund failed")

	fileLogger, ok := log.(*FileLogger)
	require.True(t, ok)
	require.NoError(t, fileLogger.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	out := string(content)
	assert.NotContains(t, out, "skipped below level")
	assert.Contains(t, out, `"msg":"wallet w-1 low balance"`)
	assert.Contains(t, out, `"level":"ERROR"`)
}
