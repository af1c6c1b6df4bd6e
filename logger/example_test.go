package logger_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ristretto-go/rslog/core"
	"github.com/ristretto-go/rslog/logger"
)

// Use the package-level functions for quick logging through the shared
// logger.
func Example() {
	logger.Configure(logger.WithSink(core.ConsoleSink))
	logger.Info("Application started")
	logger.Warning("disk usage at ", 91.5, "%")
}

// Write to a log file at debug verbosity.
func ExampleNew() {
	dir, err := os.MkdirTemp("", "rslog")
	if err != nil {
		return
	}
	defer os.RemoveAll(dir)

	log := logger.New(
		logger.WithSink(core.FileSink),
		logger.WithLog(filepath.Join(dir, "app.log")),
		logger.WithMinSeverity(core.DebugSeverity),
	)
	defer log.Close()

	log.Debug("cache warmed: ", true)
	fmt.Println(log.Stats().Processed)
	// Output: 1
}

// Build options from textual settings, such as a config file section.
func ExampleOptionsFromMap() {
	opts, err := logger.OptionsFromMap(map[string]string{
		"type":  "console",
		"level": "warning",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	log := logger.New(opts...)
	fmt.Println(log.Sink(), log.MinSeverity())
	// Output: console warn
}
