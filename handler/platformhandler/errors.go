package platformhandler

import (
	"errors"
	"fmt"

	"github.com/philipp01105/platformlog/core"
)

// ErrLevelOutOfRange matches every *LevelRangeError.
var ErrLevelOutOfRange = errors.New("level out of range")

// LevelRangeError is the panic value raised when an entry carries a
// level the translation table has no slot for.
type LevelRangeError struct {
	Level core.Level
}

func (e *LevelRangeError) Error() string {
	return fmt.Sprintf("platformhandler: level %d outside [0,%d)", int(e.Level), core.LevelCount)
}

// Is reports whether target is ErrLevelOutOfRange.
func (e *LevelRangeError) Is(target error) bool {
	return target == ErrLevelOutOfRange
}
