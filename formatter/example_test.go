package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/platformlog/core"
	"github.com/philipp01105/platformlog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:       time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:      core.InfoLevel,
		LoggerName: "wifi",
		Message:    "connected",
		Fields: []core.Field{
			{Key: "ssid", Type: core.StringType, Str: "home"},
		},
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// 2026-01-15T12:00:00Z [INFO] [wifi] connected ssid=home
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{DisableTimestamp: true})

	entry := &core.Entry{
		Level:   core.WarnLevel,
		Message: "request handled",
		Fields: []core.Field{
			{Key: "status", Int64: 200, Type: core.Int64Type},
		},
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// {"level":"WARN","message":"request handled","status":200}
}
