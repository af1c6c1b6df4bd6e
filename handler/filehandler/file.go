package filehandler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/ristretto-go/rslog/core"
	"github.com/ristretto-go/rslog/formatter"
	"github.com/ristretto-go/rslog/handler"
)

// DefaultFileMode is used when creating a log file if FileConfig.Mode is zero.
const DefaultFileMode os.FileMode = 0o644

// backupLayout names rotated files; it sorts lexicographically by time.
const backupLayout = "2006-01-02T15-04-05.000000000"

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file; empty disables writing
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Mode is the permission used when the file is created (default: 0644)
	Mode os.FileMode
	// CreateDirs creates missing parent directories before writing
	CreateDirs bool
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of rotated files to retain (0 = keep all)
	MaxBackups int
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter()
	}
	if cfg.Mode == 0 {
		cfg.Mode = DefaultFileMode
	}
}

// FileHandler appends formatted entries to a file. The file is opened and
// closed for every entry, so no descriptor is held between calls and the
// file may be moved or removed externally at any time. Writes are
// serialized by a mutex and use O_APPEND.
type FileHandler struct {
	mu              sync.Mutex
	filename        string
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	mode            os.FileMode
	createDirs      bool
	maxSize         int64
	maxBackups      int
	buf             bytes.Buffer
	stats           *handler.Stats
	closed          atomic.Bool
}

// NewFileHandler creates a new file handler. An empty Filename is allowed;
// entries are then skipped until SetFilename is called.
func NewFileHandler(cfg FileConfig) *FileHandler {
	applyFileDefaults(&cfg)

	h := &FileHandler{
		filename:   cfg.Filename,
		formatter:  cfg.Formatter,
		mode:       cfg.Mode,
		createDirs: cfg.CreateDirs,
		maxSize:    cfg.MaxSize,
		maxBackups: cfg.MaxBackups,
		stats:      handler.NewStats(),
	}

	// Cache BufferFormatter to format into the handler-owned buffer
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	return h
}

// Filename returns the current target path.
func (h *FileHandler) Filename() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.filename
}

// SetFilename changes the target path; later entries go to the new file.
func (h *FileHandler) SetFilename(filename string) {
	h.mu.Lock()
	h.filename = filename
	h.mu.Unlock()
}

// Handle appends a log entry to the file. With no filename, or after Close,
// the entry is skipped without touching the filesystem.
func (h *FileHandler) Handle(entry *core.Entry) error {
	if h.closed.Load() {
		h.stats.IncrementSkipped()
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.filename == "" {
		h.stats.IncrementSkipped()
		return nil
	}

	h.buf.Reset()
	if h.bufferFormatter != nil {
		h.bufferFormatter.FormatEntry(entry, &h.buf)
	} else {
		data, err := h.formatter.Format(entry)
		if err != nil {
			h.stats.IncrementFailed()
			return err
		}
		h.buf.Write(data)
	}

	err := h.write(h.buf.Bytes())
	h.stats.Record(err)
	return err
}

// write appends data to the file, rotating first if it would grow past
// maxSize. Callers must hold mu.
func (h *FileHandler) write(data []byte) error {
	if h.createDirs {
		if err := os.MkdirAll(filepath.Dir(h.filename), 0o755); err != nil {
			return err
		}
	}

	if err := h.rotateIfNeeded(int64(len(data))); err != nil {
		return err
	}

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, h.mode)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	return multierr.Append(err, file.Close())
}

// rotateIfNeeded renames the current file aside when appending n bytes
// would exceed maxSize. An empty or missing file is never rotated.
func (h *FileHandler) rotateIfNeeded(n int64) error {
	if h.maxSize <= 0 {
		return nil
	}

	info, err := os.Stat(h.filename)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if info.Size() == 0 || info.Size()+n <= h.maxSize {
		return nil
	}

	return h.rotate()
}

// rotate renames the current file with a timestamp suffix and trims old
// backups.
func (h *FileHandler) rotate() error {
	rotatedName := fmt.Sprintf("%s.%s", h.filename, time.Now().Format(backupLayout))

	if err := os.Rename(h.filename, rotatedName); err != nil {
		return fmt.Errorf("rotation failed: %w", err)
	}

	if h.maxBackups > 0 {
		return h.cleanupOldBackups()
	}

	return nil
}

// Backups returns the rotated files of the current target, oldest first.
func (h *FileHandler) Backups() ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.backups()
}

func (h *FileHandler) backups() ([]string, error) {
	base := filepath.Base(h.filename)

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(h.filename), globEscape(base)+".*"))
	if err != nil {
		return nil, err
	}

	// Filter to only timestamp-based backups
	var backups []string
	for _, match := range matches {
		suffix := strings.TrimPrefix(filepath.Base(match), base+".")
		if _, err := time.Parse(backupLayout, suffix); err == nil {
			backups = append(backups, match)
		}
	}

	sort.Strings(backups)
	return backups, nil
}

// cleanupOldBackups removes the oldest backups beyond maxBackups
func (h *FileHandler) cleanupOldBackups() error {
	backups, err := h.backups()
	if err != nil {
		return err
	}

	if len(backups) <= h.maxBackups {
		return nil
	}

	for _, file := range backups[:len(backups)-h.maxBackups] {
		err = multierr.Append(err, os.Remove(file))
	}

	return err
}

// globEscape quotes the glob metacharacters in a file name.
func globEscape(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '*', '?', '[', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler. No file is held open between entries, so there
// is nothing to flush.
func (h *FileHandler) Close() error {
	h.closed.Store(true)
	return nil
}
