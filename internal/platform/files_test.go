package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	if filepath.Base(downloadsDir) != "Downloads" && filepath.Base(downloadsDir) != "Download" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestEnsureWritableDir(t *testing.T) {
	tempDir := t.TempDir()

	if err := EnsureWritableDir(tempDir); err != nil {
		t.Fatalf("Expected writable temp dir, got: %v", err)
	}

	// The write check file must not be left behind
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty directory after write check, found %d entries", len(entries))
	}

	if err := EnsureWritableDir(""); err == nil {
		t.Error("Expected error for empty path")
	}

	if err := EnsureWritableDir(filepath.Join(tempDir, "missing")); err == nil {
		t.Error("Expected error for missing directory")
	}

	file := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := EnsureWritableDir(file); err == nil {
		t.Error("Expected error for a regular file")
	}
}

func TestEnsureWritableDir_ReplacesStaleCheckFile(t *testing.T) {
	tempDir := t.TempDir()
	stale := filepath.Join(tempDir, writeCheckName)
	if err := os.WriteFile(stale, []byte("left over from a crash"), 0600); err != nil {
		t.Fatalf("Failed to create stale file: %v", err)
	}

	if err := EnsureWritableDir(tempDir); err != nil {
		t.Fatalf("Expected writable temp dir, got: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("Expected stale write check file to be removed, stat err: %v", err)
	}
}

func TestFileSize(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "clip.mp4")
	if err := os.WriteFile(file, make([]byte, 2048), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if got := FileSize(file); got != 2048 {
		t.Errorf("FileSize() = %d, expected 2048", got)
	}
	if got := FileSize(filepath.Join(tempDir, "missing.mp4")); got != 0 {
		t.Errorf("FileSize() of missing file = %d, expected 0", got)
	}
	if got := FileSize(tempDir); got != 0 {
		t.Errorf("FileSize() of directory = %d, expected 0", got)
	}
}

func TestResolveOutputPath(t *testing.T) {
	tempDir := t.TempDir()

	mp3 := filepath.Join(tempDir, "Song Title.mp3")
	if err := os.WriteFile(mp3, []byte("audio"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	mp4 := filepath.Join(tempDir, "Another_Video.mp4")
	if err := os.WriteFile(mp4, []byte("video"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tests := []struct {
		name     string
		reported string
		wantExt  string
		expected string
		wantErr  bool
	}{
		{"extension swapped after extraction", filepath.Join(tempDir, "Song Title.webm"), "mp3", mp3, false},
		{"exact match", mp4, "", mp4, false},
		{"unrelated name", filepath.Join(tempDir, "Another Video.mp4"), "", "", true},
		{"truncated name", filepath.Join(tempDir, "Another_Vid.mp4"), "", mp4, false},
		{"not found", filepath.Join(tempDir, "Missing.mp4"), "", "", true},
		{"empty", "", "", "", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ResolveOutputPath(test.reported, test.wantExt)
			if test.wantErr {
				if err == nil {
					t.Errorf("Expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != test.expected {
				t.Errorf("ResolveOutputPath() = %s, expected %s", got, test.expected)
			}
		})
	}
}

func TestRevealInManager_NonExistentPath(t *testing.T) {
	err := RevealInManager(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Error("Expected error for non-existent path, got nil")
	}
}
