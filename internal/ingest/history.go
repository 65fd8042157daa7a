package ingest

import (
	"bytes"
	"os"

	"github.com/j-veylop/macwrap/internal/logger"
)

// CountCommands returns the total number of lines across the shell history
// files. Missing or unreadable files count as empty.
func CountCommands(files []string) int {
	total := 0
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Debug("Skipping history file", "path", path, "error", err)
			}
			continue
		}
		total += countLines(data)
	}
	return total
}

// countLines counts newline-terminated lines plus a trailing partial line.
func countLines(data []byte) int {
	n := bytes.Count(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n
}
