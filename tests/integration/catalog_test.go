// Package integration provides end-to-end tests for mscat commands.
package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	mscatBinary     string
	mscatBinaryOnce sync.Once
	mscatBinaryErr  error
)

// getMscatBinary builds the mscat binary once and returns its path.
func getMscatBinary(t *testing.T) string {
	t.Helper()
	mscatBinaryOnce.Do(func() {
		// Get module root directory
		_, filename, _, ok := runtime.Caller(0)
		if !ok {
			mscatBinaryErr = os.ErrInvalid
			return
		}
		moduleRoot := filepath.Dir(filepath.Dir(filepath.Dir(filename)))

		tmpDir, err := os.MkdirTemp("", "mscat-test-*")
		if err != nil {
			mscatBinaryErr = err
			return
		}
		mscatBinary = filepath.Join(tmpDir, "mscat")

		cmd := exec.Command("go", "build", "-o", mscatBinary, "./cmd/mscat")
		cmd.Dir = moduleRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			mscatBinaryErr = &buildError{output: string(output), err: err}
			return
		}
	})
	if mscatBinaryErr != nil {
		t.Fatalf("failed to build mscat: %v", mscatBinaryErr)
	}
	return mscatBinary
}

type buildError struct {
	output string
	err    error
}

func (e *buildError) Error() string {
	return e.err.Error() + ": " + e.output
}

// runMscat executes mscat with the given args inside repoDir.
// XDG_CONFIG_HOME is pointed at an empty directory so a developer's own
// global config cannot leak into the test.
func runMscat(t *testing.T, repoDir string, args ...string) (string, error) {
	t.Helper()
	bin := getMscatBinary(t)
	cmd := exec.Command(bin, args...)
	cmd.Dir = repoDir
	configHome := filepath.Join(repoDir, "xdg-config")
	_ = os.MkdirAll(configHome, 0755)
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+configHome, "MSCAT_ROOT=")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// setupRepo creates an initialized repository in a temp directory.
func setupRepo(t *testing.T) string {
	t.Helper()
	repoDir := t.TempDir()

	output, err := runMscat(t, repoDir, "init")
	if err != nil {
		t.Fatalf("init failed: %v\nOutput: %s", err, output)
	}
	return repoDir
}

func TestInitAddListDelete(t *testing.T) {
	repoDir := setupRepo(t)

	// Add two entries
	output, err := runMscat(t, repoDir, "add",
		"--title", "First Paper",
		"--author", "Jane Smith",
		"--abstract", "About transformers.")
	if err != nil {
		t.Fatalf("add failed: %v\nOutput: %s", err, output)
	}
	var added struct {
		Status string `json:"status"`
		Index  int    `json:"index"`
	}
	if err := json.Unmarshal([]byte(output), &added); err != nil {
		t.Fatalf("add output is not JSON: %v\nOutput: %s", err, output)
	}
	if added.Status != "added" || added.Index != 0 {
		t.Errorf("add response = %+v", added)
	}

	if output, err = runMscat(t, repoDir, "add", "--title", "Second Paper"); err != nil {
		t.Fatalf("second add failed: %v\nOutput: %s", err, output)
	}

	// List returns both, in insertion order
	output, err = runMscat(t, repoDir, "list")
	if err != nil {
		t.Fatalf("list failed: %v\nOutput: %s", err, output)
	}
	var entries []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(output), &entries); err != nil {
		t.Fatalf("list output is not JSON: %v\nOutput: %s", err, output)
	}
	if len(entries) != 2 || entries[0].Title != "First Paper" || entries[1].Title != "Second Paper" {
		t.Errorf("list = %+v", entries)
	}

	// Delete the first; the second shifts to index 0
	if output, err = runMscat(t, repoDir, "delete", "0"); err != nil {
		t.Fatalf("delete failed: %v\nOutput: %s", err, output)
	}
	output, err = runMscat(t, repoDir, "get", "0")
	if err != nil {
		t.Fatalf("get failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Second Paper") {
		t.Errorf("get 0 after delete = %s", output)
	}
}

func TestOutOfBoundsExitsNonZero(t *testing.T) {
	repoDir := setupRepo(t)

	output, err := runMscat(t, repoDir, "delete", "5")
	if err == nil {
		t.Fatalf("delete 5 on empty catalog succeeded: %s", output)
	}
	if !strings.Contains(output, "out of range") {
		t.Errorf("error output = %s", output)
	}
}

func TestDetailsWorkflow(t *testing.T) {
	repoDir := setupRepo(t)

	detailsPath := filepath.Join(repoDir, "details.json")
	details := `{
		"methods": [{"model_name": "GPT-4", "type": "LLM"}],
		"datasets": [{"name": "MIMIC-III", "usage": "evaluation"}],
		"metrics": [{"name": "accuracy", "evaluation_type": "QA", "value": 0.87, "model_name": "GPT-4"}]
	}`
	if err := os.WriteFile(detailsPath, []byte(details), 0644); err != nil {
		t.Fatal(err)
	}

	output, err := runMscat(t, repoDir, "add", "--title", "EHR Paper", "--details-file", detailsPath)
	if err != nil {
		t.Fatalf("add with details failed: %v\nOutput: %s", err, output)
	}
	if output, err = runMscat(t, repoDir, "add", "--title", "Plain Paper"); err != nil {
		t.Fatalf("add failed: %v\nOutput: %s", err, output)
	}

	// fields sees the nested names
	output, err = runMscat(t, repoDir, "fields")
	if err != nil {
		t.Fatalf("fields failed: %v\nOutput: %s", err, output)
	}
	var summary struct {
		Models   []string `json:"models"`
		Datasets []string `json:"datasets"`
		Metrics  []string `json:"metrics"`
	}
	if err := json.Unmarshal([]byte(output), &summary); err != nil {
		t.Fatalf("fields output is not JSON: %v\nOutput: %s", err, output)
	}
	if len(summary.Models) != 1 || summary.Models[0] != "GPT-4" {
		t.Errorf("models = %v", summary.Models)
	}

	// filter matches only the detailed entry and reports its index
	output, err = runMscat(t, repoDir, "filter", "--dataset", "MIMIC-III")
	if err != nil {
		t.Fatalf("filter failed: %v\nOutput: %s", err, output)
	}
	var hits []struct {
		Index int `json:"index"`
		Entry struct {
			Title string `json:"title"`
		} `json:"entry"`
	}
	if err := json.Unmarshal([]byte(output), &hits); err != nil {
		t.Fatalf("filter output is not JSON: %v\nOutput: %s", err, output)
	}
	if len(hits) != 1 || hits[0].Index != 0 || hits[0].Entry.Title != "EHR Paper" {
		t.Errorf("filter hits = %+v", hits)
	}
}

func TestRejectsInvalidDetails(t *testing.T) {
	repoDir := setupRepo(t)

	output, err := runMscat(t, repoDir, "add",
		"--title", "Bad Details",
		"--details", `{"methods": [{"model_name": "X", "type": "Audio"}]}`)
	if err == nil {
		t.Fatalf("add with invalid details succeeded: %s", output)
	}
	if !strings.Contains(output, "invalid details payload") {
		t.Errorf("error output = %s", output)
	}

	// Nothing was stored
	output, err = runMscat(t, repoDir, "list")
	if err != nil {
		t.Fatalf("list failed: %v\nOutput: %s", err, output)
	}
	if strings.TrimSpace(output) != "[]" {
		t.Errorf("catalog not empty after rejected add: %s", output)
	}
}

func TestSearchFindsEntry(t *testing.T) {
	repoDir := setupRepo(t)

	output, err := runMscat(t, repoDir, "add",
		"--title", "Attention Is All You Need",
		"--abstract", "We propose the Transformer.")
	if err != nil {
		t.Fatalf("add failed: %v\nOutput: %s", err, output)
	}

	output, err = runMscat(t, repoDir, "search", "transformer")
	if err != nil {
		t.Fatalf("search failed: %v\nOutput: %s", err, output)
	}
	var hits []struct {
		Index int `json:"index"`
	}
	if err := json.Unmarshal([]byte(output), &hits); err != nil {
		t.Fatalf("search output is not JSON: %v\nOutput: %s", err, output)
	}
	if len(hits) != 1 || hits[0].Index != 0 {
		t.Errorf("search hits = %+v", hits)
	}
}

func TestPromptOutput(t *testing.T) {
	repoDir := setupRepo(t)

	output, err := runMscat(t, repoDir, "prompt")
	if err != nil {
		t.Fatalf("prompt failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "extract structured information") {
		t.Errorf("prompt output = %s", output)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("prompt output is not JSON: %v", err)
	}
}

func TestImportLegacyCatalog(t *testing.T) {
	repoDir := setupRepo(t)

	legacyPath := filepath.Join(repoDir, "manuscripts.json")
	legacy := `[{"title": "Old Entry", "authors": ["A"], "methods": [{"model_name": "BERT", "type": "LLM"}]}]`
	if err := os.WriteFile(legacyPath, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	output, err := runMscat(t, repoDir, "import", legacyPath)
	if err != nil {
		t.Fatalf("import failed: %v\nOutput: %s", err, output)
	}

	output, err = runMscat(t, repoDir, "filter", "--model", "BERT")
	if err != nil {
		t.Fatalf("filter failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Old Entry") {
		t.Errorf("imported entry not filterable: %s", output)
	}
}
