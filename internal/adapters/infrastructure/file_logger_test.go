package infrastructure

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner.app/internal/ports"
)

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestFileLoggerAdapter_NewFileLoggerAdapter(t *testing.T) {
	t.Run("CreatesNestedDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deep", "upstream.log")
		l, err := NewFileLoggerAdapter(path)
		require.NoError(t, err)
		assert.NotNil(t, l)

		info, err := os.Stat(filepath.Dir(path))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("EmptyPath", func(t *testing.T) {
		l, err := NewFileLoggerAdapter("")
		assert.Nil(t, l)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log file path cannot be empty")
	})
}

func TestFileLoggerAdapter_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upstream.log")
	l, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)
	l.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	l.Info("Geocoding request started", ports.F("city", "Lisbon"))
	l.Error("Forecast API request failed", ports.F("error", errors.New("timeout")), ports.F("level", "spoofed"))
	l.Debug("detail")
	l.Warn("slow")

	lines := readLogLines(t, path)
	require.Len(t, lines, 4)

	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "Geocoding request started", lines[0]["message"])
	assert.Equal(t, "Lisbon", lines[0]["city"])
	assert.Equal(t, "2025-06-01T12:00:00Z", lines[0]["timestamp"])

	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.Equal(t, "timeout", lines[1]["error"])

	assert.Equal(t, "DEBUG", lines[2]["level"])
	assert.Equal(t, "WARN", lines[3]["level"])
}

func TestFileLoggerAdapter_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upstream.log")
	l, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l.Info("request", ports.F("n", n))
		}(i)
	}
	wg.Wait()

	assert.Len(t, readLogLines(t, path), 20)
}
