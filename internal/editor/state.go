package editor

import (
	"image"

	"github.com/ironsheep/screen-short/internal/geometry"
	"github.com/ironsheep/screen-short/internal/shape"
)

// Mode is the drag currently being tracked.
type Mode int

const (
	ModeNone Mode = iota
	ModeSelecting
	ModeMoving
	ModeResizingTopLeft
	ModeResizingBottomRight
	ModeDrawing
)

func (m Mode) String() string {
	switch m {
	case ModeSelecting:
		return "selecting"
	case ModeMoving:
		return "moving"
	case ModeResizingTopLeft:
		return "resizing_tl"
	case ModeResizingBottomRight:
		return "resizing_br"
	case ModeDrawing:
		return "drawing"
	default:
		return "none"
	}
}

// State is the externally visible phase of the editor.
type State int

const (
	StateIdle State = iota
	StateSelected
	StateSelecting
	StateMoving
	StateResizingTopLeft
	StateResizingBottomRight
	StateDrawing
)

func (s State) String() string {
	switch s {
	case StateSelected:
		return "selected"
	case StateSelecting:
		return "selecting"
	case StateMoving:
		return "moving"
	case StateResizingTopLeft:
		return "resizing_tl"
	case StateResizingBottomRight:
		return "resizing_br"
	case StateDrawing:
		return "drawing"
	default:
		return "idle"
	}
}

// Options configure a new EditState.
type Options struct {
	// Bounds is the window rectangle, normally the captured image bounds.
	Bounds geometry.Rect
	// Tools lists the enabled annotation tools in toolbar order.
	Tools []shape.Kind
	// InitialSelection seeds the selection with the whole window.
	InitialSelection bool
	// HandleMargin is the corner hit radius. Zero selects the default.
	HandleMargin int
}

// EditState holds everything the overlay knows about the user's edit.
//
// The selection is stored as raw corners. During a resize the corners may be
// inverted so the user can flip the rect by dragging past the opposite corner;
// every reader goes through Selection, which normalizes.
type EditState struct {
	bounds  geometry.Rect
	margin  int
	enabled map[shape.Kind]bool

	selection    geometry.Rect
	hasSelection bool

	shapes     []shape.Shape
	inProgress *shape.Shape

	mode     Mode
	dragging bool
	anchor   image.Point

	tool       shape.Kind
	toolActive bool

	toolbar Toolbar
	pointer image.Point
	outcome Outcome
}

// New creates the edit state for one capture session.
func New(opts Options) *EditState {
	margin := opts.HandleMargin
	if margin <= 0 {
		margin = geometry.DefaultHandleMargin
	}
	enabled := make(map[shape.Kind]bool, len(opts.Tools))
	var tools []shape.Kind
	for _, k := range opts.Tools {
		if !enabled[k] {
			enabled[k] = true
			tools = append(tools, k)
		}
	}

	e := &EditState{
		bounds:  opts.Bounds.Normalize(),
		margin:  margin,
		enabled: enabled,
		toolbar: newToolbar(tools),
	}
	if opts.InitialSelection && e.bounds.Valid() {
		e.selection = e.bounds
		e.hasSelection = true
		e.syncToolbar()
	}
	return e
}

// Bounds returns the window rectangle.
func (e *EditState) Bounds() geometry.Rect { return e.bounds }

// Selection returns the normalized selection and whether one is defined.
func (e *EditState) Selection() (geometry.Rect, bool) {
	return e.selection.Normalize(), e.hasSelection
}

// Shapes returns a copy of the committed shapes in draw order.
func (e *EditState) Shapes() []shape.Shape {
	return append([]shape.Shape(nil), e.shapes...)
}

// InProgress returns the shape being dragged, if any.
func (e *EditState) InProgress() (shape.Shape, bool) {
	if e.inProgress == nil {
		return shape.Shape{}, false
	}
	return *e.inProgress, true
}

// Mode returns the drag being tracked.
func (e *EditState) Mode() Mode { return e.mode }

// ActiveTool returns the active annotation tool, if any.
func (e *EditState) ActiveTool() (shape.Kind, bool) {
	return e.tool, e.toolActive
}

// Toolbar returns a copy of the toolbar.
func (e *EditState) Toolbar() Toolbar { return e.toolbar.clone() }

// Outcome returns the session outcome so far.
func (e *EditState) Outcome() Outcome { return e.outcome }

// State returns the current phase.
func (e *EditState) State() State {
	switch e.mode {
	case ModeSelecting:
		return StateSelecting
	case ModeMoving:
		return StateMoving
	case ModeResizingTopLeft:
		return StateResizingTopLeft
	case ModeResizingBottomRight:
		return StateResizingBottomRight
	case ModeDrawing:
		return StateDrawing
	}
	if e.hasSelection {
		return StateSelected
	}
	return StateIdle
}

// IsConfirmable reports whether Confirm would end the session.
func (e *EditState) IsConfirmable() bool {
	return e.outcome == Pending && e.hasSelection && e.selection.Valid()
}

// HandlePointer applies a pointer event and reports what changed.
//
// Parameters:
//   - ev: A press, move or release in window coordinates. Presses and
//     releases of buttons other than ButtonLeft are ignored.
//
// Returns:
//   - Result: Repaint is set when the visible state changed. Outcome is
//     Confirmed or Cancelled when a toolbar button ended the session.
//
// # Transitions
//
// A press chooses the drag mode: a toolbar button is handled first; with a
// tool active, a press inside a valid selection starts a shape and any other
// press is dropped; otherwise the selection handles decide between resizing,
// moving and starting a new selection. Moves update the drag and releases
// commit it: shapes are appended and the tool turns off, resized or moved
// selections are normalized, and a zero-area new selection is discarded.
//
// Once the session has an outcome, every event is ignored.
func (e *EditState) HandlePointer(ev PointerEvent) Result {
	if e.outcome != Pending {
		return Result{Outcome: e.outcome}
	}
	switch ev.Action {
	case PointerPress:
		return e.press(ev)
	case PointerRelease:
		return e.release(ev)
	default:
		return e.move(ev)
	}
}

// HandleKey applies a key press. Enter confirms, Escape cancels and the
// letters r, a and c toggle the rectangle, arrow and circle tools.
func (e *EditState) HandleKey(ev KeyEvent) Result {
	if e.outcome != Pending {
		return Result{Outcome: e.outcome}
	}
	switch ev.Key {
	case KeyEnter:
		return e.Confirm()
	case KeyEscape:
		return e.Cancel()
	}
	switch ev.Rune {
	case 'r', 'R':
		return e.ActivateTool(shape.Rectangle)
	case 'a', 'A':
		return e.ActivateTool(shape.Arrow)
	case 'c', 'C':
		return e.ActivateTool(shape.Circle)
	}
	return Result{}
}

// ActivateTool selects kind as the drawing tool. Activating the tool that is
// already active turns tool mode off. Disabled tools and calls made during a
// drag are ignored.
func (e *EditState) ActivateTool(kind shape.Kind) Result {
	if e.outcome != Pending || !e.enabled[kind] || e.dragging {
		return Result{}
	}
	if e.toolActive && e.tool == kind {
		e.toolActive = false
	} else {
		e.tool = kind
		e.toolActive = true
	}
	return Result{Repaint: true}
}

// Confirm ends the session successfully when the selection is valid. With no
// valid selection it does nothing.
func (e *EditState) Confirm() Result {
	if !e.IsConfirmable() {
		return Result{}
	}
	e.outcome = Confirmed
	return Result{Outcome: Confirmed}
}

// Cancel ends the session with no output.
func (e *EditState) Cancel() Result {
	if e.outcome != Pending {
		return Result{Outcome: e.outcome}
	}
	e.outcome = Cancelled
	return Result{Outcome: Cancelled}
}

// Cursor returns the hover hint for the last known pointer position.
func (e *EditState) Cursor() Cursor {
	return e.CursorAt(e.pointer)
}

// CursorAt returns the hover hint for p. It depends only on p, the selection,
// the toolbar and the active tool.
func (e *EditState) CursorAt(p image.Point) Cursor {
	if e.toolbar.Contains(p) {
		return CursorArrow
	}
	if e.toolActive {
		if e.hasSelection && e.selection.Contains(p) {
			return CursorCrosshair
		}
		return CursorArrow
	}
	if !e.hasSelection {
		return CursorCrosshair
	}
	switch geometry.HitTest(p, e.selection, e.margin) {
	case geometry.HandleTopLeft, geometry.HandleBottomRight:
		return CursorResize
	case geometry.HandleMove:
		return CursorMove
	}
	return CursorCrosshair
}

func (e *EditState) press(ev PointerEvent) Result {
	if ev.Button != ButtonLeft || e.dragging {
		return Result{}
	}
	p := ev.Pos
	e.pointer = p

	if b, ok := e.toolbar.ButtonAt(p); ok {
		return e.pressButton(b)
	}

	if e.toolActive {
		if !e.hasSelection || !e.selection.Valid() || !e.selection.Contains(p) {
			return Result{}
		}
		e.inProgress = &shape.Shape{Kind: e.tool, Start: p, End: p}
		e.begin(ModeDrawing, p)
		return Result{Repaint: true}
	}

	handle := geometry.HandleNone
	if e.hasSelection {
		handle = geometry.HitTest(p, e.selection, e.margin)
	}
	switch handle {
	case geometry.HandleBottomRight:
		e.begin(ModeResizingBottomRight, p)
	case geometry.HandleTopLeft:
		e.begin(ModeResizingTopLeft, p)
	case geometry.HandleMove:
		e.begin(ModeMoving, p)
	default:
		e.selection = geometry.FromPoints(p, p)
		e.hasSelection = true
		e.toolbar.Visible = false
		e.begin(ModeSelecting, p)
	}
	return Result{Repaint: true}
}

func (e *EditState) pressButton(b ToolbarButton) Result {
	switch b.Action {
	case ActionTool:
		return e.ActivateTool(b.Tool)
	case ActionConfirm:
		return e.Confirm()
	case ActionCancel:
		return e.Cancel()
	}
	return Result{}
}

func (e *EditState) begin(m Mode, p image.Point) {
	e.mode = m
	e.dragging = true
	e.anchor = p
}

func (e *EditState) move(ev PointerEvent) Result {
	p := ev.Pos
	e.pointer = p
	if !e.dragging {
		return Result{}
	}

	delta := p.Sub(e.anchor)
	switch e.mode {
	case ModeDrawing:
		e.inProgress.End = geometry.Clamp(p, e.selection)
	case ModeSelecting:
		e.selection = geometry.FromPoints(e.anchor, p).Normalize()
	case ModeMoving:
		e.selection = e.selection.Translate(delta)
		e.anchor = p
	case ModeResizingTopLeft:
		e.selection.X1 += delta.X
		e.selection.Y1 += delta.Y
		e.anchor = p
	case ModeResizingBottomRight:
		e.selection.X2 += delta.X
		e.selection.Y2 += delta.Y
		e.anchor = p
	}
	e.syncToolbar()
	return Result{Repaint: true}
}

func (e *EditState) release(ev PointerEvent) Result {
	if ev.Button != ButtonLeft {
		return Result{}
	}
	e.pointer = ev.Pos
	if !e.dragging {
		return Result{}
	}

	switch e.mode {
	case ModeDrawing:
		e.shapes = append(e.shapes, *e.inProgress)
		e.inProgress = nil
		e.toolActive = false
	case ModeSelecting:
		if !e.selection.Valid() {
			e.selection = geometry.Rect{}
			e.hasSelection = false
		}
	case ModeMoving, ModeResizingTopLeft, ModeResizingBottomRight:
		e.selection = e.selection.Normalize()
	}

	e.mode = ModeNone
	e.dragging = false
	e.syncToolbar()
	return Result{Repaint: true}
}

// syncToolbar shows and places the toolbar while the selection is valid. An
// in-progress selection drag keeps it hidden until the rect has area.
func (e *EditState) syncToolbar() {
	if !e.hasSelection || !e.selection.Valid() {
		e.toolbar.Visible = false
		return
	}
	e.toolbar.place(e.selection, e.bounds)
	e.toolbar.Visible = true
}

// Snapshot returns an immutable copy of everything the renderer needs.
func (e *EditState) Snapshot() Snapshot {
	s := Snapshot{
		Bounds:       e.bounds,
		Selection:    e.selection.Normalize(),
		HasSelection: e.hasSelection,
		Shapes:       e.Shapes(),
		ActiveTool:   e.tool,
		ToolActive:   e.toolActive,
		Toolbar:      e.toolbar.clone(),
	}
	if e.inProgress != nil {
		ip := *e.inProgress
		s.InProgress = &ip
	}
	return s
}

// Snapshot is a read-only view of an EditState at one instant.
type Snapshot struct {
	Bounds       geometry.Rect
	Selection    geometry.Rect
	HasSelection bool
	Shapes       []shape.Shape
	InProgress   *shape.Shape
	ActiveTool   shape.Kind
	ToolActive   bool
	Toolbar      Toolbar
}

// ValidSelection reports whether the snapshot has a selection with area.
func (s Snapshot) ValidSelection() bool {
	return s.HasSelection && s.Selection.Valid()
}
