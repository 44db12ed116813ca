// Package feedio reads Direct Publisher exports and writes search feed
// documents to disk.
package feedio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"kmgiroku/internal/models"
)

// ReadDirectPublisher loads a Direct Publisher export. The raw bytes are
// returned alongside the decoded feed so callers can fingerprint exactly
// what was read.
func ReadDirectPublisher(path string) (*models.DirectPublisherFeed, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read feed file: %w", err)
	}

	var feed models.DirectPublisherFeed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &feed, data, nil
}

// ReadSearchFeed loads a generated search feed document.
func ReadSearchFeed(path string) (*models.SearchFeed, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read feed file: %w", err)
	}

	var feed models.SearchFeed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &feed, data, nil
}

// WriteSearchFeed marshals the feed and writes it to path, creating parent
// directories as needed. The written bytes are returned for fingerprinting
// and size reporting.
func WriteSearchFeed(path string, feed *models.SearchFeed, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = json.MarshalIndent(feed, "", "  ")
	} else {
		data, err = json.Marshal(feed)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return data, nil
}

// BackupExisting renames an existing file to path.bak and returns the
// backup path. It returns an empty path when there was nothing to back up.
func BackupExisting(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	backupPath := path + ".bak"
	if err := os.Rename(path, backupPath); err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	return backupPath, nil
}
