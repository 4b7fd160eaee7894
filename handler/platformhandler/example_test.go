package platformhandler_test

import (
	"fmt"
	"os"

	"github.com/philipp01105/platformlog/core"
	"github.com/philipp01105/platformlog/handler/platformhandler"
	"github.com/philipp01105/platformlog/platform"
)

// Forward entries to an ESP-IDF style console.
func ExampleNewMT() {
	console := platform.NewConsole(platform.ConsoleConfig{Writer: os.Stdout})
	h := platformhandler.NewMT(platformhandler.Config{Backend: console})
	defer h.Close()

	_ = h.Handle(&core.Entry{Level: core.CriticalLevel, LoggerName: "ota", Message: "image invalid"})
	// Output:
	// [CRITICAL] [ota] image invalid
}

func ExampleTranslate() {
	for _, l := range []core.Level{core.ErrorLevel, core.CriticalLevel, core.OffLevel} {
		fmt.Println(l, "->", platformhandler.Translate(l))
	}
	// Output:
	// ERROR -> ERROR
	// CRITICAL -> ERROR
	// OFF -> NONE
}
