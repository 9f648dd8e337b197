package playlist

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playlist.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp playlist: %v", err)
	}
	return path
}

func TestLoadSkipsBlankAndCommentLines(t *testing.T) {
	path := writeTemp(t, "clip1.mp4\n\n# a comment\nclip2.mp4\ns3://bucket/clip3.mp4\n")

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"clip1.mp4", "clip2.mp4", "s3://bucket/clip3.mp4"}
	if len(entries) != len(want) {
		t.Fatalf("got %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("entry %d = %q, want %q", i, entries[i], want[i])
		}
	}
}

func TestLoadRejectsEmptyPlaylist(t *testing.T) {
	path := writeTemp(t, "\n# nothing but comments\n\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for a playlist with no entries")
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected an error for a missing playlist file")
	}
}
