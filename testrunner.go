package cinescroll

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string    `json:"action"`
	Value  float64   `json:"value,omitempty"`
	Values []float64 `json:"values,omitempty"`
	X      float64   `json:"x,omitempty"`
	Y      float64   `json:"y,omitempty"`
	Color  string    `json:"color,omitempty"`
	Frames int       `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input events across frames for scripted,
// headless runs. Attach to an Engine via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

var knownActions = map[string]bool{
	"scroll": true, "wheel": true, "pointer": true, "hover": true,
	"unhover": true, "restart": true, "load": true, "resize": true, "wait": true,
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to an Engine via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "hover" {
			if _, err := ParseColor(st.Color); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: color %q: %w", i, st.Color, err)
			}
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the engine. The runner's step method
// is called from Engine.Update before injected input is processed.
func (e *Engine) SetTestRunner(runner *TestRunner) {
	e.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Engine.Update.
func (r *TestRunner) step(e *Engine) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "scroll":
		if len(st.Values) > 0 {
			e.InjectScrollSequence(st.Values...)
		} else {
			e.InjectScroll(st.Value)
		}
	case "wheel":
		e.InjectWheel(st.Value)
	case "pointer":
		e.InjectPointer(st.X, st.Y)
	case "hover":
		c, _ := ParseColor(st.Color)
		e.InjectHover(c)
	case "unhover":
		e.InjectUnhover()
	case "restart":
		e.InjectRestart()
	case "load":
		e.InjectLoad()
	case "resize":
		e.InjectResize(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
