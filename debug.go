package cinescroll

import (
	"fmt"
	"os"
	"time"
)

// debugLogInterval is the number of frames aggregated per stats line.
const debugLogInterval = 60

// debugStats accumulates per-phase frame timings. Only populated when the
// engine's debug flag is set.
type debugStats struct {
	inputTime      time.Duration
	transitionTime time.Duration
	sectionTime    time.Duration
	sceneTime      time.Duration
	applyTime      time.Duration
	frames         int
	dropped        int
}

// debugLog prints averaged timings to stderr every debugLogInterval frames
// and resets the accumulators.
func (e *Engine) debugLog() {
	if !e.debug || e.stats.frames < debugLogInterval {
		return
	}
	s := e.stats
	n := time.Duration(s.frames)
	total := s.inputTime + s.transitionTime + s.sectionTime + s.sceneTime + s.applyTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[cinescroll] input: %v | transitions: %v | sections: %v | scene: %v | apply: %v | total: %v (avg of %d)\n",
		s.inputTime/n, s.transitionTime/n, s.sectionTime/n, s.sceneTime/n, s.applyTime/n, total/n, s.frames)
	st := e.store.state
	_, _ = fmt.Fprintf(os.Stderr,
		"[cinescroll] progress: %.3f | intro: %s | returning: %v | burst: %s | dropped samples: %d\n",
		st.Progress, e.intro.State(), st.Returning, e.burst.State(), s.dropped)
	e.stats = debugStats{}
}

// debugf prints a one-off event line to stderr when debug is enabled.
func (e *Engine) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[cinescroll] "+format+"\n", args...)
}
