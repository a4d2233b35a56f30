package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calvinalkan/lifespace/internal/activity"
	"github.com/calvinalkan/lifespace/internal/fs"
	"github.com/calvinalkan/lifespace/internal/store"
)

// CLI provides a clean interface for running CLI commands in tests.
// It manages a temp directory used as both working directory and HOME.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string
}

// NewCLI creates a new test CLI with a temp directory.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	dir := t.TempDir()

	return &CLI{
		t:   t,
		Dir: dir,
		Env: map[string]string{"HOME": dir},
	}
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include "lifespace" or "--cwd" - those are added automatically.
func (r *CLI) Run(args ...string) (string, string, int) {
	return r.RunWithInput("", args...)
}

// RunWithInput executes the CLI with stdin and returns stdout, stderr, and exit code.
// stdin must be a string or io.Reader; panics otherwise.
func (r *CLI) RunWithInput(stdin any, args ...string) (string, string, int) {
	var inReader io.Reader
	switch v := stdin.(type) {
	case string:
		inReader = strings.NewReader(v)
	case io.Reader:
		inReader = v
	default:
		panic(fmt.Sprintf("stdin must be string or io.Reader, got %T", stdin))
	}

	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"lifespace", "--cwd", r.Dir}, args...)
	code := Run(inReader, &outBuf, &errBuf, fullArgs, r.Env)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if the command returns non-zero.
// Returns trimmed stdout on success.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Also fails if stdout is not empty. Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	if stdout != "" {
		r.t.Fatalf("command %v failed but stdout should be empty\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// DataFile returns the path of the default activities file.
func (r *CLI) DataFile() string {
	return filepath.Join(r.Dir, ".life-space", "activities.json")
}

// ReadData returns the raw content of the activities file.
func (r *CLI) ReadData() string {
	r.t.Helper()

	content, err := os.ReadFile(r.DataFile())
	if err != nil {
		r.t.Fatalf("failed to read %s: %v", r.DataFile(), err)
	}

	return string(content)
}

// WriteData writes raw content to the activities file.
func (r *CLI) WriteData(content string) {
	r.t.Helper()

	err := os.MkdirAll(filepath.Dir(r.DataFile()), 0o750)
	if err != nil {
		r.t.Fatalf("failed to create data dir: %v", err)
	}

	err = os.WriteFile(r.DataFile(), []byte(content), 0o600)
	if err != nil {
		r.t.Fatalf("failed to write %s: %v", r.DataFile(), err)
	}
}

// Seed stores activities in the activities file the way the CLI would.
func (r *CLI) Seed(activities ...activity.Activity) {
	r.t.Helper()

	st, _, err := store.Open(fs.NewReal(), r.DataFile())
	if err != nil {
		r.t.Fatalf("failed to open store: %v", err)
	}

	err = st.Save(activities)
	if err != nil {
		r.t.Fatalf("failed to seed activities: %v", err)
	}
}

// Activities loads the activities file.
func (r *CLI) Activities() []activity.Activity {
	r.t.Helper()

	st, _, err := store.Open(fs.NewReal(), r.DataFile())
	if err != nil {
		r.t.Fatalf("failed to open store: %v", err)
	}

	activities, err := st.Load()
	if err != nil {
		r.t.Fatalf("failed to load activities: %v", err)
	}

	return activities
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
