package experiment

import (
	"io"

	"github.com/EricCWWong/GSimulator/pkg/evaluator"
	"github.com/EricCWWong/GSimulator/pkg/setup"
	"gopkg.in/cheggaaa/pb.v1"
)

// Progress reports evaluated configurations on a progress bar.
type Progress struct {
	bar *pb.ProgressBar
}

// NewProgress creates progress over total configurations drawn to w.
// Disabled progress does nothing so that callers need no checks.
func NewProgress(w io.Writer, total int, enabled bool) *Progress {
	if !enabled {
		return &Progress{}
	}

	bar := pb.New(total)
	bar.Output = w
	bar.ShowCounters = true
	bar.ShowTimeLeft = false
	bar.Prefix("Configurations ")
	return &Progress{bar: bar.Start()}
}

// Observer returns callback advancing the bar after each configuration.
func (p *Progress) Observer() evaluator.Observer {
	return func(int, setup.Configuration) {
		if p.bar != nil {
			p.bar.Increment()
		}
	}
}

// Current returns number of configurations reported so far.
func (p *Progress) Current() int64 {
	if p.bar == nil {
		return 0
	}
	return p.bar.Get()
}

// Finish stops the bar.
func (p *Progress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
