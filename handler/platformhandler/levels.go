package platformhandler

import (
	"fmt"

	"github.com/philipp01105/platformlog/core"
	"github.com/philipp01105/platformlog/platform"
)

// LevelTable maps every core.Level to a platform.Level. Its length is
// core.LevelCount, so converting a shorter array literal to it does not
// compile.
type LevelTable [core.LevelCount]platform.Level

// DefaultLevels is the translation used unless Config.Levels says otherwise.
var DefaultLevels = LevelTable([...]platform.Level{
	core.TraceLevel:    platform.LevelVerbose,
	core.DebugLevel:    platform.LevelDebug,
	core.InfoLevel:     platform.LevelInfo,
	core.WarnLevel:     platform.LevelWarn,
	core.ErrorLevel:    platform.LevelError,
	core.CriticalLevel: platform.LevelError,
	core.OffLevel:      platform.LevelNone,
})

// MustLevelTable builds a table from levels listed in core.Level order.
// It panics unless exactly core.LevelCount levels are given and the table
// passes Validate.
func MustLevelTable(levels ...platform.Level) LevelTable {
	if len(levels) != core.LevelCount {
		panic(fmt.Sprintf("platformhandler: level table needs %d entries, got %d", core.LevelCount, len(levels)))
	}
	var t LevelTable
	copy(t[:], levels)
	if err := t.Validate(); err != nil {
		panic(err.Error())
	}
	return t
}

// Validate checks that every entry is a defined backend level and that a
// more severe core level never maps to a more verbose backend level.
func (t LevelTable) Validate() error {
	for i, l := range t {
		if !l.Valid() {
			return fmt.Errorf("platformhandler: entry %d (%s) maps to invalid %s", i, core.Level(i), l)
		}
		if i > 0 && l > t[i-1] {
			return fmt.Errorf("platformhandler: entry %d (%s) maps to %s, more verbose than %s for %s",
				i, core.Level(i), l, t[i-1], core.Level(i-1))
		}
	}
	return nil
}

// Translate returns the backend level for l. It panics with a
// *LevelRangeError when l is outside the defined range.
func (t LevelTable) Translate(l core.Level) platform.Level {
	if !l.Valid() {
		panic(&LevelRangeError{Level: l})
	}
	return t[l]
}

// Translate maps l through DefaultLevels.
func Translate(l core.Level) platform.Level {
	return DefaultLevels.Translate(l)
}
