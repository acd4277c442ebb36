package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testCLI runs commands against a temp working directory.
type testCLI struct {
	t   *testing.T
	Dir string
	Env map[string]string
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	return &testCLI{t: t, Dir: t.TempDir(), Env: map[string]string{}}
}

// Run executes the CLI and returns stdout, stderr, and exit code.
func (c *testCLI) Run(args ...string) (string, string, int) {
	var outBuf, errBuf bytes.Buffer
	fullArgs := append([]string{"jsonconsole", "--cwd", c.Dir}, args...)
	code := Run(&outBuf, &errBuf, false, fullArgs, c.Env)
	return outBuf.String(), errBuf.String(), code
}

// MustRun fails the test if the command returns non-zero. Returns trimmed stdout.
func (c *testCLI) MustRun(args ...string) string {
	c.t.Helper()
	stdout, stderr, code := c.Run(args...)
	if code != 0 {
		c.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}
	return strings.TrimSpace(stdout)
}

// MustFail fails the test if the command succeeds or writes to stdout.
// Returns trimmed stderr.
func (c *testCLI) MustFail(args ...string) string {
	c.t.Helper()
	stdout, stderr, code := c.Run(args...)
	if code == 0 {
		c.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}
	if stdout != "" {
		c.t.Fatalf("command %v failed but stdout should be empty\nstdout: %s", args, stdout)
	}
	return strings.TrimSpace(stderr)
}

func (c *testCLI) ReadStore() string {
	c.t.Helper()
	data, err := os.ReadFile(filepath.Join(c.Dir, "employees.json"))
	if err != nil {
		c.t.Fatalf("failed to read store: %v", err)
	}
	return string(data)
}

func (c *testCLI) WriteStore(content string) {
	c.t.Helper()
	if err := os.WriteFile(filepath.Join(c.Dir, "employees.json"), []byte(content), 0o644); err != nil {
		c.t.Fatalf("failed to write store: %v", err)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}
