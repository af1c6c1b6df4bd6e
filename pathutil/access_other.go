//go:build !unix

package pathutil

import "os"

// canWrite is a fallback for platforms without access(2): directories are
// judged by their permission bits, files by opening them for appending.
func canWrite(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	if info.IsDir() {
		return info.Mode().Perm()&0o200 != 0
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return false
	}

	return file.Close() == nil
}
