//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultRanking is the contact list most tests start from
var defaultRanking = [][2]string{
	{"alice.smith", "200"},
	{"bob.jones", "150"},
	{"carol.smith", "90"},
	{"dave.brown", "40"},
}

// CreateTestWorkspace creates an isolated workspace for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteRanking writes a ranking CSV into the workspace
func (tf *TUITestFramework) WriteRanking(name string, rows [][2]string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	var b strings.Builder
	b.WriteString("name,count\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%s,%s\n", row[0], row[1])
	}

	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteConfig writes a config that copies through OSC 52 so the
// clipboard contents show up in the PTY output
func (tf *TUITestFramework) WriteConfig(extra string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	content := fmt.Sprintf(`version = 1
clipboard = "osc52"
log_file = %q
%s
`, filepath.Join(tf.workspace, "recipick.log"), extra)

	path := filepath.Join(tf.workspace, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// StartWithRanking prepares a workspace with rows and launches the app on it
func (tf *TUITestFramework) StartWithRanking(rows [][2]string, args ...string) (string, error) {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return "", err
	}
	csvPath, err := tf.WriteRanking("ranking.csv", rows)
	if err != nil {
		return "", err
	}
	configPath, err := tf.WriteConfig("")
	if err != nil {
		return "", err
	}
	return csvPath, tf.StartApp(append([]string{"--config", configPath, csvPath}, args...)...)
}
