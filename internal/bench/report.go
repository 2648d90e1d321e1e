package bench

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
)

// Render writes a run as a console table, one row per strategy, followed by
// the run total.
func Render(w io.Writer, r *run.Run) error {
	fmt.Fprintf(w, "Run %s: mode %s, %d elements", r.ID, r.Mode, r.Size)
	if r.Overrun > 0 {
		fmt.Fprintf(w, " + %d past the end", r.Overrun)
	}
	fmt.Fprintln(w)
	if r.Host.CPUModel != "" {
		fmt.Fprintf(w, "Host %s: %s, %d cores, %s\n",
			r.Host.Hostname, r.Host.CPUModel, r.Host.LogicalCores, formatBytes(r.Host.TotalMemory))
	}

	table := tablewriter.NewWriter(w)
	table.Header("Strategy", "Sum", "Elapsed", "Fault after", "Caught")
	for _, res := range r.Results {
		faultAfter := "-"
		if res.Faulted {
			faultAfter = formatDuration(res.FaultAfter)
		}
		caught := ""
		if res.Caught {
			caught = "yes"
		}
		if err := table.Append([]string{
			res.Strategy,
			strconv.FormatInt(res.Sum, 10),
			formatDuration(res.Elapsed),
			faultAfter,
			caught,
		}); err != nil {
			return fmt.Errorf("rendering %s: %w", res.Strategy, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering run %s: %w", r.ID, err)
	}

	_, err := fmt.Fprintf(w, "Total time: %s\n", formatDuration(r.Total))
	return err
}

func formatDuration(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64) + " ms"
}

func formatBytes(n uint64) string {
	const gib = 1 << 30
	return strconv.FormatFloat(float64(n)/gib, 'f', 1, 64) + " GiB"
}
