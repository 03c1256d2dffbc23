package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ProgressReporter renders the orchestrator's progress callback as a
// terminal progress bar.
type ProgressReporter struct {
	quiet bool
	bar   *progressbar.ProgressBar
	done  int
}

// NewProgressReporter creates a reporter; quiet suppresses all output.
func NewProgressReporter(quiet bool) *ProgressReporter {
	return &ProgressReporter{quiet: quiet}
}

// Start initializes the bar for a batch of total units.
func (p *ProgressReporter) Start(total int) {
	if p.quiet {
		return
	}
	p.done = 0
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Generating docstrings"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

// OnProgress matches generator.ProgressFunc.
func (p *ProgressReporter) OnProgress(completed, total int) {
	if p.quiet || p.bar == nil {
		return
	}
	if delta := completed - p.done; delta > 0 {
		p.bar.Add(delta)
		p.done = completed
	}
}

// Finish closes out the bar.
func (p *ProgressReporter) Finish() {
	if p.quiet || p.bar == nil {
		return
	}
	p.bar.Finish()
	p.bar = nil
}
