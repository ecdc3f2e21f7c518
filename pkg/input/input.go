// Package input locates and reads grid files.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// RootEnv names the environment variable holding the project root that
// relative input paths are resolved against.
const RootEnv = "GRIDSCAN_ROOT"

// maxLineLength bounds a single grid row.
const maxLineLength = 1024 * 1024

// ErrInvalidUTF8 is returned for a row that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Root returns the directory relative input paths are resolved against:
// flagValue if set, else $GRIDSCAN_ROOT, else the working directory.
func Root(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(RootEnv); env != "" {
		return env, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}

// ResolvePath joins a relative name onto root. Absolute names are only
// cleaned. An empty root leaves relative names relative to the process.
func ResolvePath(root, name string) string {
	if filepath.IsAbs(name) || root == "" {
		return filepath.Clean(name)
	}
	return filepath.Join(root, name)
}

// ReadLines reads every line from r, dropping line terminators ("\n" or
// "\r\n").
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", len(lines)+1, ErrInvalidUTF8)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return lines, nil
}

// ReadFile opens path and reads its lines. A missing file satisfies
// errors.Is(err, fs.ErrNotExist).
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
