// Package filehandler provides the file sink: it appends formatted log
// lines to a file.
//
// The file is opened with O_APPEND, written and closed for every entry,
// and writes are serialized by a mutex, so a FileHandler holds no
// descriptor between calls. A handler without a filename skips entries
// silently; the target can be changed at any time with SetFilename.
//
// Optional size-based rotation renames the file with a timestamp suffix
// once appending would push it past MaxSize, keeping at most MaxBackups
// rotated files.
package filehandler
