package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogsFiltersAndPaginates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	lines := `{"level":"INFO","timestamp":"2024-01-01T00:00:00Z","message":"first","module":"Auth"}
{"level":"WARN","timestamp":"2024-01-01T00:00:01Z","message":"second","module":"Refund"}
not json
{"level":"INFO","timestamp":"2024-01-01T00:00:02Z","message":"third","module":"Adoption"}
`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))

	l := &ZapLogger{logger: NewNopLogger().logger, filePath: path}

	all, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Message)
	assert.Equal(t, "first", all[2].Message)

	infos, err := l.GetLogs("INFO", 1, 1)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "first", infos[0].Message)

	found, err := l.GetLogById(all[1].Id)
	require.NoError(t, err)
	assert.Equal(t, "second", found.Message)

	empty, err := l.GetLogs("", 10, 50)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetLogsMissingFile(t *testing.T) {
	l := &ZapLogger{logger: NewNopLogger().logger, filePath: filepath.Join(t.TempDir(), "missing.log")}

	entries, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = l.GetLogById("nope")
	assert.Error(t, err)
}
