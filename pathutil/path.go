package pathutil

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"
)

// ErrNoHomeDir is returned by DefaultLogPath when a non-root user has no
// resolvable home directory.
var ErrNoHomeDir = errors.New("home directory unknown")

// homeDir returns the current user's home directory, or "" when it cannot
// be determined.
var homeDir = func() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	if u, err := user.Current(); err == nil {
		return u.HomeDir
	}
	return ""
}

// Expand replaces a leading "~" with the current user's home directory.
// Only "~" on its own or followed by a path separator is expanded; the
// path is returned unchanged if the home directory is unknown.
func Expand(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}

	home := homeDir()
	if home == "" {
		return path
	}

	return home + path[1:]
}

// IsWritable reports whether the process can write to path. An existing
// path is checked directly; otherwise a uniquely named probe file is
// created next to it (the probe name is the path with a random suffix, so
// "~/." probes inside the home directory) and removed again.
func IsWritable(path string) bool {
	if path == "" {
		return false
	}

	if _, err := os.Stat(path); err == nil {
		return canWrite(path)
	}

	probe := path + uuid.NewString() + ".writable"

	file, err := os.OpenFile(probe, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return false
	}

	file.Close()
	os.Remove(probe)

	return true
}

// DefaultLogPath returns the log file used when none is configured:
//
//   - root:        /var/log/<identifier>.log
//   - macOS:       ~/Library/Logs/<identifier>.log
//   - otherwise:   ~/.<identifier>.log
//
// where identifier is the base name of the running executable.
func DefaultLogPath() (string, error) {
	return defaultLogPath(Identifier(), os.Geteuid() == 0, runtime.GOOS)
}

func defaultLogPath(identifier string, root bool, goos string) (string, error) {
	file := identifier + ".log"

	if !root && homeDir() == "" {
		return "", ErrNoHomeDir
	}

	switch {
	case root:
		return "/var/log/" + file, nil
	case goos == "darwin":
		return Expand("~/Library/Logs/") + file, nil
	default:
		// hidden file in the home directory
		return Expand("~/.") + file, nil
	}
}

// Identifier returns the base name of the running program without its
// extension, or "app" if it cannot be determined.
func Identifier() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "app"
	}
	base := filepath.Base(os.Args[0])
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
