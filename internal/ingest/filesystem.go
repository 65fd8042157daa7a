package ingest

import (
	"bufio"
	"bytes"
	"cmp"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/j-veylop/macwrap/internal/logger"
	"github.com/j-veylop/macwrap/internal/models"
)

const topExtensionLimit = 5

// mdfindQuery selects files whose creation date falls within year.
func mdfindQuery(year int) string {
	return fmt.Sprintf(
		"kMDItemFSCreationDate >= $time.iso(%04d-01-01) && kMDItemFSCreationDate < $time.iso(%04d-01-01)",
		year, year+1)
}

// FileCreation asks Spotlight for the files created during year and
// summarises them by extension.
func FileCreation(ctx context.Context, r Runner, year int, timeout time.Duration) (models.FileCreationSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := r.Output(ctx, "mdfind", mdfindQuery(year))
	if err != nil {
		return models.FileCreationSummary{}, fmt.Errorf("failed to query file creation: %w", err)
	}
	summary, err := summarizeFiles(out)
	if err != nil {
		logger.Warn("File list truncated", "files", summary.Total, "error", err)
	}
	return summary, nil
}

// fileExt returns the lower-cased extension of path. Dotfiles such as
// .zshrc and names ending in a dot have none.
func fileExt(path string) string {
	ext := filepath.Ext(path)
	if ext == "." || ext == filepath.Base(path) {
		return ""
	}
	return strings.ToLower(ext)
}

// summarizeFiles counts non-empty paths and the five most common lower-cased
// extensions. Ties are ordered by extension. On a scan error the counts
// cover the lines read so far.
func summarizeFiles(out []byte) (models.FileCreationSummary, error) {
	counts := make(map[string]int)
	total := 0

	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		path := strings.TrimSpace(scanner.Text())
		if path == "" {
			continue
		}
		total++
		if ext := fileExt(path); ext != "" {
			counts[ext]++
		}
	}

	top := make([]models.ExtensionCount, 0, len(counts))
	for ext, n := range counts {
		top = append(top, models.ExtensionCount{Extension: ext, Count: n})
	}
	slices.SortFunc(top, func(a, b models.ExtensionCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Extension, b.Extension)
	})

	return models.FileCreationSummary{
		TopExtensions: top[:min(len(top), topExtensionLimit)],
		Total:         total,
	}, scanner.Err()
}
