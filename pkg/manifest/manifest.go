// Package manifest records provenance for generated search feed files.
//
// A manifest is a JSON sidecar written next to the feed it describes. It
// carries SHA-256 fingerprints of the source and output documents so a
// feed can be checked for drift before upload.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Suffix is appended to a feed path to name its manifest sidecar.
const Suffix = ".manifest.json"

// Manifest verification errors.
var (
	ErrNoFingerprint       = errors.New("manifest has no feed fingerprint")
	ErrFingerprintMismatch = errors.New("feed fingerprint mismatch")
)

// Manifest describes one generated search feed file.
type Manifest struct {
	Version      string    `json:"version"`
	GeneratedAt  time.Time `json:"generatedAt"`
	Source       string    `json:"source"`
	SourceSHA256 string    `json:"sourceSha256,omitempty"`
	FeedSHA256   string    `json:"feedSha256"`
	Assets       int       `json:"assets"`
	Errors       int       `json:"errors"`
}

// Fingerprint computes the hex SHA-256 digest of raw file bytes.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// Build assembles a manifest for feed bytes generated from the named source.
func Build(source string, sourceData, feedData []byte, assets, errCount int) *Manifest {
	m := &Manifest{
		Version:     "1",
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		FeedSHA256:  Fingerprint(feedData),
		Assets:      assets,
		Errors:      errCount,
	}

	if len(sourceData) > 0 {
		m.SourceSHA256 = Fingerprint(sourceData)
	}

	return m
}

// PathFor returns the manifest sidecar path for a feed output path.
func PathFor(feedPath string) string {
	return feedPath + Suffix
}

// Write saves the manifest as indented JSON.
func (m *Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}

// Load reads a manifest from disk.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &m, nil
}

// Verify checks feed bytes against the recorded fingerprint.
func (m *Manifest) Verify(feedData []byte) error {
	if m.FeedSHA256 == "" {
		return ErrNoFingerprint
	}

	got := Fingerprint(feedData)
	if got != m.FeedSHA256 {
		return fmt.Errorf("%w: manifest has %s, feed is %s", ErrFingerprintMismatch, m.FeedSHA256, got)
	}

	return nil
}
