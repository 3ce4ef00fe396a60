//go:build e2e && unix

package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAndCopyChecked(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartWithRanking(defaultRanking)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render both panes")
	require.True(t, tf.SeePlain("Create To"), "Should show the To button")
	require.True(t, tf.SeePlain("Create CC"), "Should show the CC button")

	require.NoError(t, tf.Search("smith"))
	require.True(t, tf.SeePlain("2 results"), "Should find both smiths")

	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())

	require.True(t, tf.WaitForClipboard("alice.smith;carol.smith", 3*time.Second),
		"Clipboard should hold the checked names in rank order")
	require.True(t, tf.SeePlain("To recipients copied"), "Should confirm the copy")
}

func TestUncheckBeforeCopy(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartWithRanking(defaultRanking)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render both panes")

	// alt+enter searches and jumps into the list
	require.NoError(t, tf.Type("smith"))
	require.NoError(t, tf.SendKeys(KeyAltEnter))
	require.True(t, tf.SeePlain("2 results"))

	require.NoError(t, tf.Down())
	require.NoError(t, tf.Toggle())
	require.True(t, tf.SeePlain("1/2 checked"), "Unchecking should update the count")

	require.NoError(t, tf.Up())
	require.NoError(t, tf.Up())
	require.NoError(t, tf.Enter())

	require.True(t, tf.WaitForClipboard("alice.smith", 3*time.Second))
}

func TestCopySingleName(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartWithRanking(defaultRanking)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render both panes")

	// An empty query lists everyone
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("4 results"))

	require.NoError(t, tf.Down()) // button
	require.NoError(t, tf.Down()) // first row
	require.NoError(t, tf.Down()) // second row
	require.NoError(t, tf.Enter())

	require.True(t, tf.WaitForClipboard("bob.jones", 3*time.Second))
	require.True(t, tf.SeePlain("bob.jones copied"))
}

func TestPanesAreIndependent(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartWithRanking(defaultRanking)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render both panes")

	require.NoError(t, tf.Search("alice"))
	require.True(t, tf.SeePlain("1 results"))

	require.NoError(t, tf.Down())
	require.NoError(t, tf.SendKeys(KeyRight))
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, tf.Search("bob"))
	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())

	require.True(t, tf.WaitForClipboard("bob.jones", 3*time.Second))
	require.True(t, tf.SeePlain("CC recipients copied"))
}

func TestNotFoundSuggestion(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartWithRanking(defaultRanking)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render both panes")

	require.NoError(t, tf.Search("alice.smih"))
	require.True(t, tf.SeePlain("Not found: alice.smih"), "Should name the unmatched keyword")
	require.True(t, tf.SeePlain("did you mean alice.smith?"), "Should suggest the closest name")

	// The button stays disabled with nothing checked
	before := len(tf.ClipboardWrites())
	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())
	time.Sleep(300 * time.Millisecond)
	assert.Len(t, tf.ClipboardWrites(), before, "Disabled button must not copy")
}

func TestReloadOnFileChange(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	csvPath, err := tf.StartWithRanking(defaultRanking)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render both panes")

	require.NoError(t, tf.Search("white"))
	require.True(t, tf.SeePlain("No results"))

	_, err = tf.WriteRanking(filepath.Base(csvPath), append(defaultRanking, [2]string{"erin.white", "300"}))
	require.NoError(t, err)

	require.True(t, tf.OutputContainsPlain("erin.white", 5*time.Second), "Reload should rerun the committed query")
	require.True(t, tf.SeePlain("5 candidates"))
}

func TestMissingSourceShowsError(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	configPath, err := tf.WriteConfig("")
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("--config", configPath, filepath.Join(workspace, "missing.csv")))
	require.True(t, tf.SeePlain("Failed to load candidates"), "Should show the load error")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	tf.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit after quit")
	}
}

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartWithRanking(defaultRanking)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render both panes")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	// q is text while the query has focus
	require.NoError(t, tf.Quit())
	require.True(t, tf.SeePlain("> q"), "q should be typed into the query")

	require.NoError(t, tf.SendKeys(KeyEsc))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, tf.Quit())

	select {
	case exitErr := <-done:
		if exitErr != nil {
			t.Logf("Process exited with 'q' command (exit code: %v)", exitErr)
		}
	case <-time.After(1500 * time.Millisecond):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal("Application did not exit after q")
	}
}

func TestCtrlCQuitsFromQuery(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartWithRanking(defaultRanking)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render both panes")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	require.NoError(t, tf.SendCtrlC())

	select {
	case <-done:
	case <-time.After(1500 * time.Millisecond):
		t.Fatal("Application did not exit after ctrl+c")
	}
}

func TestInitWritesConfig(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	configPath := filepath.Join(workspace, "fresh", "config.toml")

	require.NoError(t, tf.StartApp("init", "--config", configPath))
	require.True(t, tf.SeePlain("Wrote "+configPath))
	assert.FileExists(t, configPath)
}
