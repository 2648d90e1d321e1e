package run

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain"
)

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func validRun() Run {
	return Run{
		ID:        "7f3c",
		Mode:      ModeFault,
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Size:      100,
		Overrun:   2,
		Results: []StrategyResult{
			{Strategy: "comma-ok", Sum: 10, Faulted: true},
			{Strategy: "scope-fail", Sum: 10, Faulted: true, Caught: true},
		},
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "clean", want: ModeClean},
		{in: " FAULT ", want: ModeFault},
		{in: "1", want: ModeClean},
		{in: "2", want: ModeFault},
		{in: "0", wantErr: true},
		{in: "", wantErr: true},
		{in: "noexcept", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMode(tt.in)
			if tt.wantErr {
				requireValidationField(t, err, "mode")
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMode_Overrun(t *testing.T) {
	t.Parallel()

	if got := ModeClean.Overrun(5); got != 0 {
		t.Errorf("ModeClean.Overrun(5) = %d, want 0", got)
	}
	if got := ModeFault.Overrun(5); got != 5 {
		t.Errorf("ModeFault.Overrun(5) = %d, want 5", got)
	}
}

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Run)
		field  string
	}{
		{name: "missing id", modify: func(r *Run) { r.ID = " " }, field: "id"},
		{name: "bad mode", modify: func(r *Run) { r.Mode = "both" }, field: "mode"},
		{name: "empty dataset", modify: func(r *Run) { r.Size = 0 }, field: "size"},
		{name: "clean with overrun", modify: func(r *Run) { r.Mode = ModeClean }, field: "overrun"},
		{name: "no start time", modify: func(r *Run) { r.StartedAt = time.Time{} }, field: "started_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := validRun()
			tt.modify(&r)
			requireValidationField(t, r.Validate(), tt.field)
		})
	}

	r := validRun()
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() on valid run = %v", err)
	}
}

func TestRun_ResultAndCaught(t *testing.T) {
	t.Parallel()

	r := validRun()

	res, ok := r.Result("scope-fail")
	if !ok || !res.Caught {
		t.Errorf("Result(scope-fail) = %+v, %v; want caught result", res, ok)
	}
	if _, ok := r.Result("missing"); ok {
		t.Error("Result(missing) found a result")
	}
	if !r.Caught() {
		t.Error("Caught() = false, want true")
	}

	r.Results[1].Caught = false
	if r.Caught() {
		t.Error("Caught() = true after clearing, want false")
	}
}
