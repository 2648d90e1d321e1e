package run

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain"
)

// Mode selects whether a benchmark run reads past the end of the dataset.
type Mode string

const (
	// ModeClean reads exactly the dataset; no strategy faults.
	ModeClean Mode = "clean"
	// ModeFault reads past the end, so every strategy hits an
	// out-of-range access.
	ModeFault Mode = "fault"
)

// IsValid returns true if the mode is one of the defined constants.
func (m Mode) IsValid() bool {
	switch m {
	case ModeClean, ModeFault:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

// Overrun returns how many indices past the end a run in this mode reads.
func (m Mode) Overrun(configured int) int {
	if m == ModeFault {
		return configured
	}
	return 0
}

// ParseMode accepts a mode name, case-insensitively. The interactive menu
// numbers "1" and "2" are accepted as clean and fault.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeClean, "1":
		return ModeClean, nil
	case ModeFault, "2":
		return ModeFault, nil
	default:
		return "", domain.Invalid("mode", fmt.Sprintf("must be %q or %q, got %q", ModeClean, ModeFault, s))
	}
}
