// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
)

// StrategyResponse is one strategy row of a run. Durations are reported
// in milliseconds.
type StrategyResponse struct {
	Strategy     string  `json:"strategy"`
	Sum          int64   `json:"sum"`
	ElapsedMS    float64 `json:"elapsed_ms"`
	Faulted      bool    `json:"faulted"`
	FaultAfterMS float64 `json:"fault_after_ms,omitempty"`
	Caught       bool    `json:"caught"`
}

// HostResponse describes the machine a run executed on.
type HostResponse struct {
	Hostname     string `json:"hostname,omitempty"`
	OS           string `json:"os,omitempty"`
	Arch         string `json:"arch,omitempty"`
	CPUModel     string `json:"cpu_model,omitempty"`
	LogicalCores int    `json:"logical_cores,omitempty"`
	TotalMemory  uint64 `json:"total_memory_bytes,omitempty"`
}

// RunResponse represents a single run in HTTP responses.
type RunResponse struct {
	ID        string             `json:"id"`
	Mode      string             `json:"mode"`
	StartedAt string             `json:"started_at"`
	TotalMS   float64            `json:"total_ms"`
	Size      int                `json:"size"`
	Overrun   int                `json:"overrun"`
	Caught    bool               `json:"caught"`
	Results   []StrategyResponse `json:"results"`
	Host      HostResponse       `json:"host"`
}

// RunListResponse represents a list of runs in HTTP responses.
type RunListResponse struct {
	Runs  []RunResponse `json:"runs"`
	Count int           `json:"count"`
}

// ToRunResponse converts a run to its response DTO.
func ToRunResponse(r *run.Run) RunResponse {
	results := make([]StrategyResponse, len(r.Results))
	for i, res := range r.Results {
		results[i] = StrategyResponse{
			Strategy:     res.Strategy,
			Sum:          res.Sum,
			ElapsedMS:    millis(res.Elapsed),
			Faulted:      res.Faulted,
			FaultAfterMS: millis(res.FaultAfter),
			Caught:       res.Caught,
		}
	}

	return RunResponse{
		ID:        r.ID,
		Mode:      r.Mode.String(),
		StartedAt: r.StartedAt.UTC().Format(time.RFC3339Nano),
		TotalMS:   millis(r.Total),
		Size:      r.Size,
		Overrun:   r.Overrun,
		Caught:    r.Caught(),
		Results:   results,
		Host: HostResponse{
			Hostname:     r.Host.Hostname,
			OS:           r.Host.OS,
			Arch:         r.Host.Arch,
			CPUModel:     r.Host.CPUModel,
			LogicalCores: r.Host.LogicalCores,
			TotalMemory:  r.Host.TotalMemory,
		},
	}
}

// ToRunListResponse converts runs to a list response. An empty input
// yields an empty, non-nil Runs slice.
func ToRunListResponse(runs []run.Run) RunListResponse {
	items := make([]RunResponse, len(runs))
	for i := range runs {
		items[i] = ToRunResponse(&runs[i])
	}
	return RunListResponse{Runs: items, Count: len(items)}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Health statuses.
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse summarizes registry results. ready is false when
// any check failed.
func ToReadinessResponse(results map[string]error) (resp HealthResponse, ready bool) {
	resp = HealthResponse{Status: StatusReady, Checks: make(map[string]string, len(results))}
	ready = true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			ready = false
			continue
		}
		resp.Checks[name] = StatusOK
	}
	if !ready {
		resp.Status = StatusNotReady
	}
	return resp, ready
}
