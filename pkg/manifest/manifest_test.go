package manifest

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFingerprint(t *testing.T) {
	// Known SHA-256 of the empty input.
	got := Fingerprint(nil)
	if got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("Fingerprint(nil) = %s", got)
	}

	a := Fingerprint([]byte(`{"version":"1"}`))

	b := Fingerprint([]byte(`{"version":"2"}`))
	if a == b {
		t.Error("Fingerprints of different inputs should differ")
	}
}

func TestBuild(t *testing.T) {
	source := []byte(`{"movies":[]}`)
	feed := []byte(`{"version":"1","assets":[]}`)

	m := Build("roku_feed.json", source, feed, 42, 3)

	if m.Version != "1" {
		t.Errorf("Expected version 1, got %s", m.Version)
	}

	if m.Source != "roku_feed.json" {
		t.Errorf("Expected source roku_feed.json, got %s", m.Source)
	}

	if m.Assets != 42 || m.Errors != 3 {
		t.Errorf("Expected assets=42 errors=3, got assets=%d errors=%d", m.Assets, m.Errors)
	}

	if m.SourceSHA256 != Fingerprint(source) {
		t.Error("Source fingerprint mismatch")
	}

	if m.FeedSHA256 != Fingerprint(feed) {
		t.Error("Feed fingerprint mismatch")
	}

	if m.GeneratedAt.IsZero() {
		t.Error("Expected GeneratedAt to be set")
	}
}

func TestBuild_NoSourceData(t *testing.T) {
	m := Build("stdin", nil, []byte("{}"), 0, 0)
	if m.SourceSHA256 != "" {
		t.Errorf("Expected empty source fingerprint, got %s", m.SourceSHA256)
	}
}

func TestManifest_Verify(t *testing.T) {
	feed := []byte(`{"version":"1","assets":[]}`)
	m := Build("feed.json", nil, feed, 0, 0)

	if err := m.Verify(feed); err != nil {
		t.Errorf("Verify returned unexpected error: %v", err)
	}

	err := m.Verify([]byte(`{"version":"1","assets":[{}]}`))
	if !errors.Is(err, ErrFingerprintMismatch) {
		t.Errorf("Expected ErrFingerprintMismatch, got %v", err)
	}

	empty := &Manifest{}
	if err := empty.Verify(feed); !errors.Is(err, ErrNoFingerprint) {
		t.Errorf("Expected ErrNoFingerprint, got %v", err)
	}
}

func TestManifest_WriteLoad(t *testing.T) {
	dir := t.TempDir()
	feed := []byte(`{"version":"1"}`)

	m := Build("roku_feed.json", []byte("src"), feed, 7, 1)

	path := PathFor(filepath.Join(dir, "roku_search_feed.json"))
	if err := m.Write(path); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if loaded.FeedSHA256 != m.FeedSHA256 {
		t.Errorf("Loaded fingerprint %s, want %s", loaded.FeedSHA256, m.FeedSHA256)
	}

	if loaded.Assets != 7 || loaded.Errors != 1 {
		t.Errorf("Loaded counts assets=%d errors=%d, want 7 and 1", loaded.Assets, loaded.Errors)
	}

	if err := loaded.Verify(feed); err != nil {
		t.Errorf("Loaded manifest failed to verify original feed: %v", err)
	}
}

func TestPathFor(t *testing.T) {
	got := PathFor("out/roku_search_feed.json")
	if got != "out/roku_search_feed.json.manifest.json" {
		t.Errorf("PathFor = %s", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.manifest.json")); err == nil {
		t.Error("Expected error for missing manifest file")
	}
}
