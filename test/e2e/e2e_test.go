//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binPath string

func TestMain(m *testing.M) {
	// Load .env if present (ignore error)
	_ = godotenv.Load("../../.env")

	dir, err := os.MkdirTemp("", "sgms-e2e")
	if err != nil {
		fmt.Printf("Setup failed: %v\n", err)
		os.Exit(1)
	}
	binPath = filepath.Join(dir, "sgms")

	build := exec.Command("go", "build", "-o", binPath, "../../cmd/sgms")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Printf("Build failed: %v\n", err)
		os.RemoveAll(dir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// runSession feeds the given lines to a fresh process working in dir.
func runSession(t *testing.T, dir string, lines ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binPath)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"SGMS_DATA_FILE=grades_data.json",
		"SGMS_BACKUP_SUFFIX=.backup",
		"LOG_LEVEL=error",
		"LOG_FORMAT=json",
	)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n") + "\n")
	out, err := cmd.Output()
	return string(out), err
}

func readData(t *testing.T, path string) map[string]map[string]any {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestE2E_SessionLifecycle(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "grades_data.json")
	backupFile := dataFile + ".backup"

	t.Run("First Session Saves Dataset", func(t *testing.T) {
		out, err := runSession(t, dir,
			"1", "cs01", "alice doe", "",
			"4", "math", "mathematics", "",
			"6", "cs01", "math", "70", "",
			"7", "",
			"8",
		)
		require.NoError(t, err)
		assert.Contains(t, out, "Welcome to Student Grade Management System (SGMS)")
		assert.Contains(t, out, "Student Alice Doe (CS01) added successfully!")
		assert.Contains(t, out, "Grade recorded: Alice Doe -> Mathematics = 70.0")
		assert.Contains(t, out, "Total Students with Grades: 1 | Pass Rate: 100.0%")
		assert.Contains(t, out, "Data saved successfully.")

		doc := readData(t, dataFile)
		assert.Equal(t, "Alice Doe", doc["students"]["CS01"])
		assert.Equal(t, "Mathematics", doc["subjects"]["MATH"])
		assert.Equal(t, 70.0, doc["grades"]["CS01_MATH"])
		assert.Equal(t, "SGMS v1.0", doc["metadata"]["app"])
		assert.NoFileExists(t, backupFile)
	})

	t.Run("Second Session Rotates Backup", func(t *testing.T) {
		out, err := runSession(t, dir,
			"3", "CS01", "",
			"8",
		)
		require.NoError(t, err)
		assert.Contains(t, out, "Student and related grades deleted.")

		doc := readData(t, dataFile)
		assert.Empty(t, doc["students"])
		assert.Empty(t, doc["grades"])
		assert.Equal(t, "Mathematics", doc["subjects"]["MATH"])

		prev := readData(t, backupFile)
		assert.Equal(t, "Alice Doe", prev["students"]["CS01"])
	})

	t.Run("Closed Input Does Not Save", func(t *testing.T) {
		before, err := os.ReadFile(dataFile)
		require.NoError(t, err)

		_, err = runSession(t, dir, "1", "cs02", "bob", "")
		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.ExitCode())

		after, err := os.ReadFile(dataFile)
		require.NoError(t, err)
		assert.Equal(t, string(before), string(after))
	})

	t.Run("Corrupt File Starts Fresh", func(t *testing.T) {
		require.NoError(t, os.WriteFile(dataFile, []byte("{not json"), 0o644))

		out, err := runSession(t, dir, "2", "", "8")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Corrupted data file. Starting fresh.\n"))
		assert.Contains(t, out, "No students found.")

		prev, err := os.ReadFile(backupFile)
		require.NoError(t, err)
		assert.Equal(t, "{not json", string(prev))
	})
}
