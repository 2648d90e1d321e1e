package dto

import (
	"strings"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain"
	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
)

const msgRequired = "is required"

// CreateRunRequest is the JSON body for starting a run.
type CreateRunRequest struct {
	Mode string `json:"mode"`
}

// Validate checks the mode. Besides "clean" and "fault" it accepts the
// menu digits "1" and "2".
// Returns a *domain.ValidationError if the check fails.
func (r *CreateRunRequest) Validate() error {
	if strings.TrimSpace(r.Mode) == "" {
		return domain.Invalid("mode", msgRequired)
	}
	_, err := run.ParseMode(r.Mode)
	return err
}

// ToMode returns the parsed mode. Call Validate first.
func (r *CreateRunRequest) ToMode() run.Mode {
	mode, _ := run.ParseMode(r.Mode)
	return mode
}
