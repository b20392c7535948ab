package renderer

import (
	"sync/atomic"
)

// progressReportStep is the percentage between two progress log lines
const progressReportStep = 10

// progressTracker counts finished pixels. Workers bump an atomic counter and
// poke a one slot channel without blocking; a single goroutine turns the
// pokes into log lines and callbacks.
type progressTracker struct {
	total    int
	done     atomic.Int64
	kick     chan struct{}
	finished chan struct{}
	callback ProgressFunc
	reported int // last reported percentage, owned by run
}

func newProgressTracker(total int, callback ProgressFunc) *progressTracker {
	return &progressTracker{
		total:    total,
		kick:     make(chan struct{}, 1),
		finished: make(chan struct{}),
		callback: callback,
		reported: -1,
	}
}

// pixelDone records one finished pixel. It never blocks.
func (p *progressTracker) pixelDone() {
	p.done.Add(1)
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// run reports progress until finish is called
func (p *progressTracker) run() {
	defer close(p.finished)
	for range p.kick {
		p.report()
	}
	p.report()
}

// finish stops the reporter once every worker is done and waits for the final report
func (p *progressTracker) finish() {
	close(p.kick)
	<-p.finished
}

func (p *progressTracker) report() {
	done := int(p.done.Load())
	percent := 100
	if p.total > 0 {
		percent = done * 100 / p.total
	}
	step := percent - percent%progressReportStep
	if step <= p.reported {
		return
	}
	p.reported = step

	logger.Infof("progress: %d%% (%d/%d pixels)", step, done, p.total)
	if p.callback != nil {
		p.callback(done, p.total)
	}
}
