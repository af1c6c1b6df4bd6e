//go:build unix

package pathutil

import "golang.org/x/sys/unix"

// canWrite asks the kernel whether the real user may write to an existing
// path, honouring permissions, read-only mounts and ACLs.
func canWrite(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
