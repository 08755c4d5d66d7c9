package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadJSON tests the JSON loading functionality
func TestLoadJSON(t *testing.T) {
	t.Run("loads valid JSON file successfully", func(t *testing.T) {
		tmpDir := t.TempDir()
		jsonFile := filepath.Join(tmpDir, "save.json")

		content := `{"player_id": "default", "version": 2}`
		require.NoError(t, os.WriteFile(jsonFile, []byte(content), 0600))

		var result struct {
			PlayerID string `json:"player_id"`
			Version  int    `json:"version"`
		}
		err := LoadJSON(jsonFile, &result)

		assert.NoError(t, err)
		assert.Equal(t, "default", result.PlayerID)
		assert.Equal(t, 2, result.Version)
	})

	t.Run("missing file keeps os.ErrNotExist in the chain", func(t *testing.T) {
		var result map[string]interface{}
		err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"), &result)

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("returns error for invalid JSON", func(t *testing.T) {
		tmpDir := t.TempDir()
		jsonFile := filepath.Join(tmpDir, "invalid.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte("{broken"), 0600))

		var result map[string]interface{}
		err := LoadJSON(jsonFile, &result)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal JSON")
	})
}

// TestSaveJSON tests the JSON saving functionality
func TestSaveJSON(t *testing.T) {
	t.Run("saves indented JSON with a trailing newline", func(t *testing.T) {
		tmpDir := t.TempDir()
		jsonFile := filepath.Join(tmpDir, "output.json")

		data := map[string]interface{}{
			"location": "player_inventory",
			"items":    map[string]int{"iron_ingot": 12},
		}
		require.NoError(t, SaveJSON(jsonFile, data))

		content, err := os.ReadFile(jsonFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "  \"items\"")
		assert.True(t, strings.HasSuffix(string(content), "\n"))

		info, err := os.Stat(jsonFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		tmpDir := t.TempDir()
		jsonFile := filepath.Join(tmpDir, "clean.json")

		require.NoError(t, SaveJSON(jsonFile, map[string]string{"key": "value"}))

		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "clean.json", entries[0].Name())
	})

	t.Run("replaces an existing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		jsonFile := filepath.Join(tmpDir, "save.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte(`{"old": true}`), 0644))

		require.NoError(t, SaveJSON(jsonFile, map[string]bool{"new": true}))

		content, err := os.ReadFile(jsonFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "new")
		assert.NotContains(t, string(content), "old")
	})

	t.Run("returns error when the directory does not exist", func(t *testing.T) {
		err := SaveJSON(filepath.Join(t.TempDir(), "nope", "file.json"), map[string]string{"key": "value"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create temp file")
	})

	t.Run("handles non-serializable data gracefully", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "invalid.json")

		err := SaveJSON(jsonFile, map[string]interface{}{"channel": make(chan int)})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal data")
	})
}

// TestLoadJSON_SaveJSON_RoundTrip verifies round-trip consistency
func TestLoadJSON_SaveJSON_RoundTrip(t *testing.T) {
	jsonFile := filepath.Join(t.TempDir(), "roundtrip.json")

	type saveState struct {
		PlayerID  string         `json:"player_id"`
		Version   int            `json:"version"`
		Materials map[string]int `json:"materials"`
	}
	original := saveState{
		PlayerID:  "traveler",
		Version:   2,
		Materials: map[string]int{"iron_ingot": 40, "raw_leather": 7},
	}

	require.NoError(t, SaveJSON(jsonFile, original))

	var loaded saveState
	require.NoError(t, LoadJSON(jsonFile, &loaded))

	assert.Equal(t, original, loaded)
}
