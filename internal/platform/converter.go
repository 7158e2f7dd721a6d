package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ConverterName is the converter binary looked up next to the executable
const ConverterName = "ffmpeg"

// ExecutableName appends .exe on Windows
func ExecutableName(name, goos string) string {
	if goos == OSWindows && !strings.HasSuffix(name, ".exe") {
		return name + ".exe"
	}
	return name
}

// ConverterCandidates returns the discovery order for baseDir:
// bin/<exe>, <exe>, then the OS-default name directly under baseDir
func ConverterCandidates(baseDir, goos string) []string {
	exe := ExecutableName(ConverterName, goos)
	return []string{
		filepath.Join(baseDir, "bin", exe),
		filepath.Join(baseDir, exe),
		filepath.Join(baseDir, ConverterName),
	}
}

// FindConverter returns the first existing candidate under baseDir, or "" so the
// engine falls back to its own search
func FindConverter(baseDir string) string {
	if baseDir == "" {
		return ""
	}
	for _, path := range ConverterCandidates(baseDir, runtime.GOOS) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// AppBaseDir returns the directory containing the running executable. Under
// `go run` the binary lives in a temporary build dir, so the working directory
// is used instead.
func AppBaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	dir := filepath.Dir(exe)
	if isGoRunDir(dir) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}
	return dir, nil
}

func isGoRunDir(dir string) bool {
	tmp := os.TempDir()
	if resolved, err := filepath.EvalSymlinks(tmp); err == nil {
		tmp = resolved
	}
	return strings.HasPrefix(dir, tmp) && strings.Contains(dir, "go-build")
}

// LocateConverter returns override when set, else the converter found next to
// the application
func LocateConverter(override string) string {
	if override = strings.TrimSpace(override); override != "" {
		return override
	}
	base, err := AppBaseDir()
	if err != nil {
		return ""
	}
	return FindConverter(base)
}
