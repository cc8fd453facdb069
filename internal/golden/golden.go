// Package golden runs table-driven tests whose table lives in the file
// system: every test case is a file under a testdata directory and its
// expected outputs sit next to it.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// RefreshEnv names the environment variable holding a glob of test cases
// whose outputs are rewritten instead of compared, e.g.
//
//	UNPARSER_REFRESH='**' go test ./unparser
const RefreshEnv = "UNPARSER_REFRESH"

// Corpus describes a directory of test cases.
type Corpus struct {
	// Root is the test data directory, relative to the file calling Run.
	Root string

	// Extensions (without a dot) of the files that define test cases.
	Extensions []string

	// Outputs expected from each case. The file for output n of case
	// foo.yaml is foo.yaml.<Outputs[n].Extension>; a missing file means the
	// output is expected to be empty.
	Outputs []Output
}

// Output is one expected output of a test case.
type Output struct {
	Extension string
	// Compare may be nil, in which case outputs must match byte for byte.
	Compare Compare
}

// Compare returns an empty string when got matches want, and a description
// of the mismatch otherwise.
type Compare func(got, want string) string

// Run executes test once per case, as a subtest named after the case's path
// relative to the calling test's directory. test fills outputs, which has
// one slot per element of c.Outputs.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	t.Helper()
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	cases, err := c.collect(root)
	if err != nil {
		t.Fatalf("golden: listing %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("golden: no test cases under %q", root)
	}

	refresh := os.Getenv(RefreshEnv)
	if refresh != "" {
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: %s=%q is not a valid glob", RefreshEnv, refresh)
		}
		t.Logf("golden: refreshing outputs matching %s=%s", RefreshEnv, refresh)
	}

	for _, path := range cases {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: reading %q: %v", path, err)
			}

			outputs := make([]string, len(c.Outputs))
			test(t, name, string(input), outputs)
			if t.Failed() {
				return
			}

			rewrite := false
			if refresh != "" {
				rewrite, _ = doublestar.Match(refresh, name)
			}
			for i, output := range c.Outputs {
				file := fmt.Sprint(path, ".", output.Extension)
				if rewrite {
					if err := writeOutput(file, outputs[i]); err != nil {
						t.Errorf("golden: %v", err)
					}
					continue
				}
				want, err := os.ReadFile(file)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("golden: reading %q: %v", file, err)
					continue
				}
				cmp := output.Compare
				if cmp == nil {
					cmp = Diff
				}
				if msg := cmp(outputs[i], string(want)); msg != "" {
					t.Errorf("output mismatch for %q:\n%s", file, msg)
				}
			}
		})
	}
}

func (c Corpus) collect(root string) ([]string, error) {
	var cases []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.TrimPrefix(filepath.Ext(p), ".")
		for _, want := range c.Extensions {
			if ext == want {
				cases = append(cases, p)
				break
			}
		}
		return nil
	})
	sort.Strings(cases)
	return cases, err
}

func writeOutput(file, content string) error {
	if content == "" {
		if err := os.Remove(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("deleting %q: %w", file, err)
		}
		return nil
	}
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", file, err)
	}
	return nil
}

// Diff compares byte for byte and describes a mismatch as a unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: could not determine the test file's directory")
	}
	return filepath.Dir(file)
}
