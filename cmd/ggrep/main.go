// Command ggrep prints every input line a regular-expression pattern
// matches, reading from files, a recursively walked directory tree, or
// standard input.
//
// Usage: ggrep [-r] -E <pattern> [path ...]
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gophergrep/ggrep/internal/pattern"
	"github.com/gophergrep/ggrep/internal/scanner"
)

func main() {
	recursive, expr, paths, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ggrep: %v\n", err)
		os.Exit(2)
	}

	pat, err := pattern.Compile(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ggrep: %v\n", err)
		os.Exit(2)
	}

	found, err := run(pat, recursive, paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ggrep: %v\n", err)
		os.Exit(2)
	}

	if !found {
		os.Exit(1)
	}
	// default exit code is 0, meaning at least one match was printed.
}

// parseArgs reads the command line by hand, accepting -r and -E as
// independent, composable flags: an optional leading -r, then a required
// -E, then the pattern, then zero or more paths.
func parseArgs(args []string) (recursive bool, expr string, paths []string, err error) {
	i := 0

	if i < len(args) && args[i] == "-r" {
		recursive = true
		i++
	}

	if i >= len(args) || args[i] != "-E" {
		return false, "", nil, fmt.Errorf("usage: ggrep [-r] -E <pattern> [path ...]")
	}
	i++

	if i < len(args) {
		expr = args[i]
		i++
	}

	paths = args[i:]
	return recursive, expr, paths, nil
}

func run(pat *pattern.Compiled, recursive bool, paths []string) (bool, error) {
	if len(paths) == 0 {
		if recursive {
			// No inputs in recursive mode: no matches, no error.
			return false, nil
		}
		return scanStdin(pat)
	}

	if recursive {
		found := false
		for _, root := range paths {
			ok, err := walkDir(pat, root, strings.TrimRight(root, "/"))
			if err != nil {
				return found, err
			}
			if ok {
				found = true
			}
		}
		return found, nil
	}

	multi := len(paths) > 1
	found := false
	for _, p := range paths {
		label := ""
		if multi {
			label = p
		}

		ok, err := scanFile(pat, p, label)
		if err != nil {
			return found, err
		}
		if ok {
			found = true
		}
	}
	return found, nil
}

func scanStdin(pat *pattern.Compiled) (bool, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return false, fmt.Errorf("read stdin: %w", err)
	}
	return scanner.Scan(os.Stdout, data, pat, "")
}

func scanFile(pat *pattern.Compiled, fsPath, label string) (bool, error) {
	file, err := os.Open(fsPath)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", fsPath, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", fsPath, err)
	}

	return scanner.Scan(os.Stdout, data, pat, label)
}

// walkDir descends fsDir, matching every file it finds. labelPrefix is the
// forward-slash label of fsDir itself; each descendant's label is
// labelPrefix + "/" + its path relative to fsDir, independent of the
// platform's actual path separator.
func walkDir(pat *pattern.Compiled, fsDir, labelPrefix string) (bool, error) {
	entries, err := os.ReadDir(fsDir)
	if err != nil {
		return false, fmt.Errorf("read dir %s: %w", fsDir, err)
	}

	found := false
	for _, entry := range entries {
		childFS := filepath.Join(fsDir, entry.Name())
		childLabel := labelPrefix + "/" + entry.Name()

		var ok bool
		if entry.IsDir() {
			ok, err = walkDir(pat, childFS, childLabel)
		} else {
			ok, err = scanFile(pat, childFS, childLabel)
		}
		if err != nil {
			return found, err
		}
		if ok {
			found = true
		}
	}

	return found, nil
}
