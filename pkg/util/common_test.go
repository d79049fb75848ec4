package util

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	lg, err := NewLogger(&buf, "warn", "json")
	require.NoError(t, err)

	lg.Info("hidden")
	lg.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	lg, err = NewLogger(&buf, "DEBUG", "")
	require.NoError(t, err)
	lg.Debug("dbg")
	require.Contains(t, buf.String(), "msg=dbg")
}

func TestNewLogger_Errors(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud", "text")
	require.Error(t, err)

	_, err = NewLogger(&bytes.Buffer{}, "info", "xml")
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("error")
	require.NoError(t, err)
	require.Equal(t, slog.LevelError, l)
}

func TestCloseFileFunc(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "x"))
	require.NoError(t, err)
	CloseFileFunc(f)
	// closing twice only logs
	CloseFileFunc(f)
}
