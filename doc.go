// Package cinescroll is the scroll-to-scene synchronization engine behind a
// single-page, scroll-driven cinematic website.
//
// One continuous normalized scroll value and the live pointer position drive
// everything on the page: the 3D camera, every animated scene element, the
// opacity and slide of the overlaid content panels, and three one-shot
// transitions (the intro flight, the restart-journey rewind and the burst
// particle reveal).
//
// # Quick start
//
// Create an [Engine], attach a [Renderer] and call [Engine.Update] once per
// display refresh:
//
//	eng := cinescroll.New(cinescroll.DefaultOptions())
//	eng.SetRenderer(cinescroll.RendererFunc(func(f *cinescroll.Frame) {
//		// draw f.Camera, f.Objects, f.Burst and f.Sections
//	}))
//	// each frame:
//	eng.Wheel(dy)
//	eng.PointerMove(mx, my)
//	eng.Update(1.0 / 60)
//
// Call [Engine.FrameReady] after the renderer has produced its first frame to
// start the intro.
//
// # Frame order
//
// Each Update applies input first (scripted events, then the smooth-scroll
// integrator feeding the [Sampler]), then advances the [Intro] and [Return]
// machines, computes the effective progress, checks the [Burst] edge trigger
// against the previous frame's progress, maps [Section] visibility, runs the
// [SceneMapper] and finally hands the [Frame] to the renderer.
//
// # Single writer
//
// The [Store] accepts progress writes from one [Writer] at a time: the
// sampler normally, nobody while the intro runs, and the return machine while
// it rewinds. Everything else either owns private state or is a pure
// function of its inputs.
//
// # Degraded path
//
// With Options.SceneEnabled false the scene mapper is never built: sections
// keep working from scroll alone and the intro completes immediately.
package cinescroll
