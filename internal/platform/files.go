package platform

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Allowed difference in length between a requested and an on-disk file name
const MaxNameDifference = 10

// writeCheckName is created and removed to prove a directory is writable
const writeCheckName = ".ytgrab-write-check"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// EnsureWritableDir checks that dirPath exists, is a directory, and accepts new
// files
func EnsureWritableDir(dirPath string) error {
	if strings.TrimSpace(dirPath) == "" {
		return fmt.Errorf("destination directory is empty")
	}

	info, err := os.Stat(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("destination directory does not exist: %s", dirPath)
		}
		return fmt.Errorf("failed to stat destination directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination is not a directory: %s", dirPath)
	}

	marker := filepath.Join(dirPath, writeCheckName)
	f, err := os.OpenFile(marker, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("destination directory is not writable: %w", err)
	}
	closeErr := f.Close()
	if err := os.Remove(marker); err != nil {
		slog.Warn("failed to remove write check file", "path", marker, "err", err)
	}
	if closeErr != nil {
		return fmt.Errorf("destination directory is not writable: %w", closeErr)
	}

	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	isAndroid := runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != ""

	if isAndroid {
		// External storage so files show up in the Gallery
		return "/sdcard/Download", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// FileSize returns the size of path in bytes, or 0 if it cannot be read
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0
	}
	return info.Size()
}

// RevealInManager opens the system file manager at path. Files are highlighted
// where the OS supports it; directories are simply opened.
func RevealInManager(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		if info.IsDir() {
			return exec.Command(OpenCommand, absPath).Run()
		}
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		if info.IsDir() {
			return exec.Command(ExplorerCommand, absPath).Run()
		}
		return exec.Command(ExplorerCommand, WindowsSelectParam+absPath).Run()
	case OSLinux:
		dir := absPath
		if !info.IsDir() {
			// Selection is not standardized on Linux
			dir = filepath.Dir(absPath)
		}
		return openDirLinux(dir)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func openDirLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// ResolveOutputPath finds the file the engine actually wrote. Post-processing
// can change the extension (audio extraction writes .mp3 next to the reported
// .webm), and filename sanitizing can alter the base name slightly.
func ResolveOutputPath(reported, wantExt string) (string, error) {
	if reported == "" {
		return "", fmt.Errorf("file path is empty")
	}

	if wantExt != "" {
		swapped := strings.TrimSuffix(reported, filepath.Ext(reported)) + "." + strings.TrimPrefix(wantExt, ".")
		if _, err := os.Stat(swapped); err == nil {
			return swapped, nil
		}
	}

	if _, err := os.Stat(reported); err == nil {
		return reported, nil
	}

	dir := filepath.Dir(reported)
	name := filepath.Base(reported)
	ext := filepath.Ext(name)
	if wantExt != "" {
		ext = "." + strings.TrimPrefix(wantExt, ".")
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		entryName := entry.Name()
		entryExt := filepath.Ext(entryName)
		if entryExt != ext {
			continue
		}
		if isSimilarFileName(strings.TrimSuffix(entryName, entryExt), base) {
			candidates = append(candidates, filepath.Join(dir, entryName))
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("file not found: %s", reported)
	}

	sort.Strings(candidates)
	return candidates[0], nil
}

// isSimilarFileName checks if two file names are similar enough to be considered the same file
func isSimilarFileName(name1, name2 string) bool {
	clean1 := strings.TrimSpace(name1)
	clean2 := strings.TrimSpace(name2)

	if clean1 == clean2 {
		return true
	}

	// Truncated or decorated names
	if strings.Contains(clean1, clean2) || strings.Contains(clean2, clean1) {
		diff := len(clean1) - len(clean2)
		if diff < 0 {
			diff = -diff
		}
		return diff <= MaxNameDifference
	}

	return false
}
