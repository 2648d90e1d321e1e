package publish

import (
	"time"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
)

// RunDTO is the collector's run schema. Durations are in nanoseconds.
type RunDTO struct {
	ID        string        `json:"id"`
	Mode      string        `json:"mode"`
	StartedAt string        `json:"started_at"`
	TotalNS   int64         `json:"total_ns"`
	Size      int           `json:"size"`
	Overrun   int           `json:"overrun"`
	Caught    bool          `json:"caught"`
	Results   []StrategyDTO `json:"results"`
	Host      HostDTO       `json:"host"`
}

// StrategyDTO is one strategy row in RunDTO.
type StrategyDTO struct {
	Strategy     string `json:"strategy"`
	Sum          int64  `json:"sum"`
	ElapsedNS    int64  `json:"elapsed_ns"`
	Faulted      bool   `json:"faulted"`
	FaultAfterNS int64  `json:"fault_after_ns,omitempty"`
	Caught       bool   `json:"caught"`
}

// HostDTO describes the machine that produced the run.
type HostDTO struct {
	Hostname     string `json:"hostname,omitempty"`
	OS           string `json:"os,omitempty"`
	Arch         string `json:"arch,omitempty"`
	CPUModel     string `json:"cpu_model,omitempty"`
	LogicalCores int    `json:"logical_cores,omitempty"`
	TotalMemory  uint64 `json:"total_memory,omitempty"`
}

// ToRunDTO converts a run into the collector schema.
func ToRunDTO(r *run.Run) RunDTO {
	results := make([]StrategyDTO, len(r.Results))
	for i, res := range r.Results {
		results[i] = StrategyDTO{
			Strategy:     res.Strategy,
			Sum:          res.Sum,
			ElapsedNS:    res.Elapsed.Nanoseconds(),
			Faulted:      res.Faulted,
			FaultAfterNS: res.FaultAfter.Nanoseconds(),
			Caught:       res.Caught,
		}
	}

	return RunDTO{
		ID:        r.ID,
		Mode:      r.Mode.String(),
		StartedAt: r.StartedAt.UTC().Format(time.RFC3339Nano),
		TotalNS:   r.Total.Nanoseconds(),
		Size:      r.Size,
		Overrun:   r.Overrun,
		Caught:    r.Caught(),
		Results:   results,
		Host: HostDTO{
			Hostname:     r.Host.Hostname,
			OS:           r.Host.OS,
			Arch:         r.Host.Arch,
			CPUModel:     r.Host.CPUModel,
			LogicalCores: r.Host.LogicalCores,
			TotalMemory:  r.Host.TotalMemory,
		},
	}
}
