package cinescroll

// syntheticKind identifies the type of an injected event.
type syntheticKind uint8

const (
	synthScroll syntheticKind = iota
	synthWheel
	synthPointer
	synthHover
	synthUnhover
	synthRestart
	synthLoad
	synthResize
)

// syntheticEvent represents a single injected input event.
type syntheticEvent struct {
	kind  syntheticKind
	value float64
	x, y  float64
	color Color
}

// InjectScroll queues a jump of the scroll container to a normalized track
// position. The event is consumed on the next Update; the sampler then sees
// exactly that value, subject to the usual transition suppression.
func (e *Engine) InjectScroll(progress float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthScroll, value: progress})
}

// InjectScrollSequence queues one scroll sample per frame.
func (e *Engine) InjectScrollSequence(values ...float64) {
	for _, v := range values {
		e.InjectScroll(v)
	}
}

// InjectWheel queues a raw wheel delta.
func (e *Engine) InjectWheel(delta float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthWheel, value: delta})
}

// InjectPointer queues a pointer move at the given client coordinates.
func (e *Engine) InjectPointer(clientX, clientY float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthPointer, x: clientX, y: clientY})
}

// InjectHover queues a card hover with the given accent color.
func (e *Engine) InjectHover(c Color) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthHover, color: c})
}

// InjectUnhover queues the end of a card hover.
func (e *Engine) InjectUnhover() {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthUnhover})
}

// InjectRestart queues a click on the restart affordance.
func (e *Engine) InjectRestart() {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthRestart})
}

// InjectLoad queues the renderer's first-frame signal.
func (e *Engine) InjectLoad() {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthLoad})
}

// InjectResize queues a viewport resize.
func (e *Engine) InjectResize(width, height float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthResize, x: width, y: height})
}

// Pending returns the number of queued synthetic events.
func (e *Engine) Pending() int {
	return len(e.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed.
func (e *Engine) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	switch evt.kind {
	case synthScroll:
		if finite(evt.value) {
			e.scroll.ScrollToProgress(evt.value, true)
		} else {
			e.sampler.OnScrollSignal(evt.value)
		}
	case synthWheel:
		e.Wheel(evt.value)
	case synthPointer:
		e.PointerMove(evt.x, evt.y)
	case synthHover:
		c := evt.color
		e.Hover(&c)
	case synthUnhover:
		e.Hover(nil)
	case synthRestart:
		e.Restart()
	case synthLoad:
		e.FrameReady()
	case synthResize:
		e.Resize(evt.x, evt.y)
	}
	return true
}
