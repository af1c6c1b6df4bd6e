package formatter_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/ristretto-go/rslog/core"
	"github.com/ristretto-go/rslog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter()

	entry := &core.Entry{
		Time:     time.Date(2026, 1, 15, 12, 0, 0, 0, time.Local),
		Severity: core.WarningSeverity,
		Text:     "low memory",
	}

	out, _ := f.Format(entry)
	fmt.Print(strings.TrimPrefix(string(out), "2026-01-15 12:00:00.0000000000"))
	// Output:
	//  [warn]: low memory
}
