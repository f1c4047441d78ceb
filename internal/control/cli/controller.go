package cli

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/dayslider/internal/control/action"
	"github.com/ja-he/dayslider/internal/input"
	"github.com/ja-he/dayslider/internal/input/processors"
	"github.com/ja-he/dayslider/internal/potatolog"
	"github.com/ja-he/dayslider/internal/scroll"
	"github.com/ja-he/dayslider/internal/slider"
	"github.com/ja-he/dayslider/internal/styling"
	"github.com/ja-he/dayslider/internal/tui"
	"github.com/ja-he/dayslider/internal/ui"
	"github.com/ja-he/dayslider/internal/ui/panes"
)

// Result is the outcome of a pick.
type Result struct {
	Confirmed bool
	Time      time.Time
}

// ControllerParams are the parameters for a Controller.
type ControllerParams struct {
	Slider     *slider.Slider
	Stylesheet *styling.Stylesheet
	Bindings   input.InputConfig

	// TickInterval is the interval at which flinging wheels are advanced.
	TickInterval time.Duration

	Log potatolog.LogReader
	Now func() time.Time
}

// Controller owns the picker's state and runs its event loop: screen events
// and animation ticks are handled one at a time, redrawing after each.
type Controller struct {
	slider   *slider.Slider
	rootPane *panes.RootPane

	inputProcessor *processors.OverlayStack
	bindings       *input.Tree
	helpVisible    bool

	focus         int
	hoveredButton ui.Button

	// history holds the undoable actions done, most recent last.
	history []action.Action

	drag         *drag
	animating    bool
	tickInterval time.Duration

	result Result
	done   bool

	now func() time.Time

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer
	screenDimensions  func() (x, y, w, h int)

	log zerolog.Logger
}

// drag is a mouse drag of a wheel in progress.
type drag struct {
	wheel   *scroll.Layout
	lastX   int
	tracker *scroll.VelocityTracker
}

// velocityWindow is how much of a drag's history determines the release
// velocity.
const velocityWindow = 100 * time.Millisecond

const (
	marginX       = 1
	titleHeight   = 1
	buttonsHeight = 1
	statusHeight  = 1
	wheelGap      = 1
)

// NewController creates a new Controller drawing to and receiving events from
// the given screen.
func NewController(p ControllerParams, screen *tui.ScreenHandler) (*Controller, error) {
	c := &Controller{
		slider:            p.Slider,
		hoveredButton:     ui.NoButton,
		tickInterval:      p.TickInterval,
		now:               p.Now,
		screenEvents:      screen.GetEventPollable(),
		initializedScreen: screen,
		syncer:            screen,
		screenDimensions:  screen.Dimensions,
		log:               log.With().Str("component", "controller").Logger(),
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.tickInterval <= 0 {
		c.tickInterval = 16 * time.Millisecond
	}
	c.result.Time = p.Slider.Time()

	actions := c.actions()
	spec := map[input.Keyspec]action.Action{}
	for keyspec, actionspec := range p.Bindings.Picker {
		a, ok := actions[actionspec]
		if !ok {
			return nil, fmt.Errorf("unknown action '%s' bound to '%s'", actionspec, keyspec)
		}
		spec[keyspec] = a
	}
	tree, err := input.ConstructInputTree(spec)
	if err != nil {
		return nil, fmt.Errorf("could not construct key bindings (%w)", err)
	}
	c.bindings = tree
	c.inputProcessor = processors.NewOverlayStack(tree)

	c.rootPane = c.buildPanes(screen, p.Stylesheet, p.Log)
	c.slider.SetViewportWidth(c.wheelWidth())

	return c, nil
}

func (c *Controller) wheelWidth() int {
	_, _, w, _ := c.screenDimensions()
	if w-2*marginX < 1 {
		return 1
	}
	return w - 2*marginX
}

func (c *Controller) buildPanes(screen *tui.ScreenHandler, stylesheet *styling.Stylesheet, logReader potatolog.LogReader) *panes.RootPane {
	renderer := func(dims func() (x, y, w, h int)) ui.ConstrainedRenderer {
		return ui.NewConstrainedRenderer(screen, dims)
	}

	titleDims := func() (x, y, w, h int) {
		_, _, sw, _ := c.screenDimensions()
		return 0, 0, sw, titleHeight
	}
	subpanes := []ui.Pane{
		panes.NewTitlePane(renderer(titleDims), titleDims, stylesheet, c.slider.Title),
	}

	y := titleHeight + wheelGap
	for i, wheel := range c.slider.Wheels() {
		i := i
		wheelY := y
		_, slotHeight := wheel.SlotSize()
		height := 1 + slotHeight
		dims := func() (x, y, w, h int) {
			return marginX, wheelY, c.wheelWidth(), height
		}
		subpanes = append(subpanes, panes.NewWheelPane(renderer(dims), dims, stylesheet, wheel, i, c.slider.Names[i], func() bool { return c.focus == i }))
		y += height + wheelGap
	}

	buttonsY := y
	buttonsDims := func() (x, y, w, h int) {
		return marginX, buttonsY, c.wheelWidth(), buttonsHeight
	}
	subpanes = append(subpanes, panes.NewButtonsPane(renderer(buttonsDims), buttonsDims, stylesheet, func() ui.Button { return c.hoveredButton }))

	statusDims := func() (x, y, w, h int) {
		_, _, sw, sh := c.screenDimensions()
		return 0, sh - statusHeight, sw, statusHeight
	}
	subpanes = append(subpanes, panes.NewStatusPane(renderer(statusDims), statusDims, stylesheet, c.status, logReader))

	helpDims := func() (x, y, w, h int) {
		_, _, sw, sh := c.screenDimensions()
		w = sw - 8
		h = sh - 4
		return (sw - w) / 2, (sh - h) / 2, w, h
	}
	help := panes.NewHelpPane(renderer(helpDims), helpDims, stylesheet, c.bindings.GetHelp)

	return panes.NewRootPane(screen, c.screenDimensions, subpanes, help, func() bool { return c.helpVisible })
}

func (c *Controller) status() string {
	wheel := c.focusedWheel()
	s := fmt.Sprintf("%s  [%s]", c.slider.Time().Format(time.RFC3339), wheel.State().ToString())
	if n := c.slider.MinuteInterval(); n > 1 {
		s += fmt.Sprintf("  %dmin", n)
	}
	if c.helpVisible {
		s += "  (? or <esc> to close help)"
	} else {
		s += "  (? for help)"
	}
	return s
}

func (c *Controller) focusedWheel() *scroll.Layout {
	return c.slider.Wheels()[c.focus]
}

// revertible returns an action that records itself in the history whenever it
// is done, so that "undo" can return to the instant before it.
func (c *Controller) revertible(explanation string, f func()) action.Action {
	r := action.NewRevertible(
		explanation,
		c.slider.Time,
		f,
		c.slider.SetTime,
	)
	return action.NewSimple(explanation, func() {
		r.Do()
		c.history = append(c.history, r)
	})
}

func (c *Controller) actions() map[input.Actionspec]action.Action {
	step := func(units int) func() {
		return func() { c.focusedWheel().ScrollUnits(units) }
	}
	toBound := func(first bool) func() {
		return func() {
			min, max := c.slider.Bounds()
			bound := max
			if first {
				bound = min
			}
			if bound == nil {
				c.log.Info().Bool("first", first).Msg("no such bound set")
				return
			}
			c.slider.SetTime(*bound)
		}
	}

	return map[input.Actionspec]action.Action{
		"step-backward": c.revertible("step back by one unit", step(-1)),
		"step-forward":  c.revertible("step forward by one unit", step(1)),
		"page-backward": c.revertible("step back by five units", step(-5)),
		"page-forward":  c.revertible("step forward by five units", step(5)),
		"now":           c.revertible("go to now", func() { c.slider.SetTime(c.now()) }),
		"first-bound":   c.revertible("go to earliest selectable instant", toBound(true)),
		"last-bound":    c.revertible("go to latest selectable instant", toBound(false)),
		"next-wheel": action.NewSimple("focus next wheel", func() {
			c.focus = (c.focus + 1) % len(c.slider.Wheels())
		}),
		"previous-wheel": action.NewSimple("focus previous wheel", func() {
			c.focus = (c.focus - 1 + len(c.slider.Wheels())) % len(c.slider.Wheels())
		}),
		"undo": action.NewSimple("undo", c.undo),
		"confirm": action.NewSimple("confirm", func() {
			c.finish(true)
		}),
		"cancel": action.NewSimple("cancel", func() {
			c.finish(false)
		}),
		"help": action.NewSimple("show help", c.showHelp),
	}
}

func (c *Controller) undo() {
	if len(c.history) == 0 {
		c.log.Debug().Msg("nothing to undo")
		return
	}
	last := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]
	c.stopAnimation()
	last.Undo()
}

func (c *Controller) showHelp() {
	closeHelp := action.NewSimple("close help", func() {
		c.helpVisible = false
		if err := c.inputProcessor.Pop(); err != nil {
			c.log.Error().Err(err).Msg("could not close help")
		}
	})
	overlay, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"?":     closeHelp,
		"q":     closeHelp,
		"<esc>": closeHelp,
	})
	if err != nil {
		c.log.Error().Err(err).Msg("could not construct help bindings")
		return
	}
	c.inputProcessor.Push(overlay)
	c.helpVisible = true
}

func (c *Controller) finish(confirmed bool) {
	c.stopAnimation()
	c.result = Result{Confirmed: confirmed, Time: c.slider.Time()}
	c.done = true
	c.log.Info().Bool("confirmed", confirmed).Str("time", c.result.Time.Format(time.RFC3339)).Msg("finished picking")
}

// stopAnimation aborts all flings by re-setting the wheels on the current
// instant.
func (c *Controller) stopAnimation() {
	if c.animating {
		c.slider.SetTime(c.slider.Time())
		c.animating = false
	}
}

// HandleEvent handles a single screen event.
// Returns whether the picker is done.
func (c *Controller) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key := input.KeyFromTcell(e)
		if !c.inputProcessor.ProcessInput(key) {
			c.log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
		}

	case *tcell.EventMouse:
		c.handleMouseEvent(e)

	case *tcell.EventResize:
		c.syncer.NeedsSync()
		c.slider.SetViewportWidth(c.wheelWidth())
	}
	return c.done
}

func (c *Controller) handleMouseEvent(e *tcell.EventMouse) {
	x, y := e.Position()
	buttons := e.Buttons()

	if c.drag != nil {
		if buttons&tcell.Button1 != 0 {
			c.dragTo(x, e.When())
		} else {
			c.endDrag(x, e.When())
		}
		return
	}

	positionInfo := c.rootPane.GetPositionInfo(x, y)
	c.hoveredButton = ui.NoButton

	switch info := positionInfo.(type) {
	case ui.WheelPanePositionInfo:
		wheel := c.slider.Wheels()[info.Wheel]
		switch {
		case buttons&tcell.Button1 != 0:
			c.focus = info.Wheel
			c.startDrag(wheel, x, e.When())
		case buttons&tcell.WheelUp != 0, buttons&tcell.WheelLeft != 0:
			c.focus = info.Wheel
			c.revertible("scroll back", func() { wheel.ScrollUnits(-1) }).Do()
		case buttons&tcell.WheelDown != 0, buttons&tcell.WheelRight != 0:
			c.focus = info.Wheel
			c.revertible("scroll forward", func() { wheel.ScrollUnits(1) }).Do()
		}

	case ui.ButtonsPanePositionInfo:
		c.hoveredButton = info.Button
		if buttons&tcell.Button1 == 0 {
			return
		}
		switch info.Button {
		case ui.ConfirmButton:
			c.finish(true)
		case ui.CancelButton:
			c.finish(false)
		case ui.NowButton:
			c.revertible("go to now", func() { c.slider.SetTime(c.now()) }).Do()
		}
	}
}

func (c *Controller) startDrag(wheel *scroll.Layout, x int, at time.Time) {
	c.stopAnimation()
	d := &drag{wheel: wheel, lastX: x, tracker: scroll.NewVelocityTracker(velocityWindow)}
	d.tracker.AddMovement(x, at)
	c.revertible("drag", wheel.DragStart).Do()
	c.drag = d
}

func (c *Controller) dragTo(x int, at time.Time) {
	d := c.drag
	d.tracker.AddMovement(x, at)
	if dx := x - d.lastX; dx != 0 {
		d.wheel.DragMove(dx)
		d.lastX = x
	}
}

func (c *Controller) endDrag(x int, at time.Time) {
	c.dragTo(x, at)
	d := c.drag
	c.drag = nil
	if d.wheel.DragEnd(d.tracker.Velocity()) {
		c.animating = true
	}
}

// Tick advances all flinging wheels.
// Returns whether further ticks are wanted.
func (c *Controller) Tick(now time.Time) bool {
	c.animating = c.slider.Tick(now)
	return c.animating
}

// Draw draws the picker.
func (c *Controller) Draw() {
	c.rootPane.Draw()
}

// pollEvents hands the screen's events to events until the screen is
// finalized or quit is closed. It closes events when done.
func pollEvents(screenEvents tui.EventPollable, events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := screenEvents.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// Run runs the event loop until the picker is confirmed or cancelled, then
// finalizes the screen.
//
// Screen events are polled on a separate goroutine and handed to the loop,
// which is the only one touching the picker's state. While a wheel is
// flinging, a ticker advances it.
func (c *Controller) Run() Result {
	c.log.Info().Msg("dayslider TUI started")
	defer c.initializedScreen.Fini()

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go pollEvents(c.screenEvents, events, quit)

	var ticker *time.Ticker
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	c.Draw()
	for !c.done {
		var ticks <-chan time.Time
		if c.animating {
			if ticker == nil {
				ticker = time.NewTicker(c.tickInterval)
			}
			ticks = ticker.C
		} else if ticker != nil {
			ticker.Stop()
			ticker = nil
		}

		select {
		case ev, ok := <-events:
			if !ok {
				c.log.Warn().Msg("screen closed")
				return c.result
			}
			c.HandleEvent(ev)
			// handle whatever else is pending before drawing
			for pending := len(events); pending > 0 && !c.done; pending-- {
				c.HandleEvent(<-events)
			}
		case now := <-ticks:
			c.Tick(now)
		}

		if !c.done {
			c.Draw()
		}
	}
	return c.result
}
