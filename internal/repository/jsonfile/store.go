// Package jsonfile persists collections as JSON arrays in flat files,
// one file per collection. Every operation is whole-file: reads load the
// entire array, writes overwrite it. There is no cross-process locking;
// the package targets single-instance, low-concurrency operation.
package jsonfile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
)

// readArray loads the JSON array stored at path into a slice of T.
// A missing file is the normal first-run state and yields an empty slice
// silently. An unreadable or malformed file also yields an empty slice,
// but logs a warning: that case usually means data loss and must not
// pass unnoticed.
func readArray[T any](logger *slog.Logger, path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("collection file unreadable, treating as empty", "path", path, "err", err)
		}
		return nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("collection file corrupt, treating as empty", "path", path, "err", err)
		return nil
	}
	return records
}

// writeArray overwrites the file at path with the records serialized as a
// pretty-printed JSON array, so the data files stay human-diffable.
// The write is whole-file and not atomic.
func writeArray[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", path, err)
	}
	return nil
}
