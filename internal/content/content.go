// Package content loads the curated flat-file lists shown on the home page.
package content

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File names expected under the data directory, one entry per line, UTF-8.
const (
	backgroundsFile = "backgrounds.txt"
	watchListFile   = "watch_list.txt"
	soundsFile      = "sounds.txt"
	notesFile       = "notes.txt"
)

// Library holds the static lists, read once at startup and served as-is.
type Library struct {
	Backgrounds []string `json:"backgrounds"`
	WatchList   []string `json:"watch_list"`
	Sounds      []string `json:"sounds"`
	Notes       []string `json:"notes"`
}

// Load reads all four list files from dir. A missing file is an error; the
// feature has no fallback content, so main treats it as fatal.
func Load(dir string) (*Library, error) {
	lib := &Library{}

	targets := []struct {
		name string
		dest *[]string
	}{
		{backgroundsFile, &lib.Backgrounds},
		{watchListFile, &lib.WatchList},
		{soundsFile, &lib.Sounds},
		{notesFile, &lib.Notes},
	}

	for _, t := range targets {
		lines, err := readLines(filepath.Join(dir, t.name))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", t.name, err)
		}
		*t.dest = lines
	}

	return lib, nil
}

// readLines reads one file's lines inside its own scope so the handle is
// released as soon as the read finishes, success or failure.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
