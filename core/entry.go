package core

import (
	"sync"
	"time"
)

// Entry is a single log record: when it was made, how urgent it is and the
// rendered argument text.
type Entry struct {
	Time     time.Time
	Severity Severity
	Text     string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Time{}
	e.Severity = 0
	e.Text = ""
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Text = ""
	entryPool.Put(e)
}
