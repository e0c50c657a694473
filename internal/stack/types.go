// Package stack implements the pure zipper algebra that sits at the
// center of the window manager: workspaces, screens, and the
// focus-centred window stack, plus the navigation/insertion operations
// over them. Nothing in this package touches X11; it is exercised purely
// by the reducer and by tests.
package stack

import "fmt"

// WindowID is the opaque identifier X assigns to a window. The core treats
// it as an ordered, comparable value and never interprets its bits.
type WindowID uint32

// ScreenID is a dense, 0-based index of a physical monitor.
type ScreenID int

// WorkspaceTag names a virtual workspace. Tags are unique within a
// WindowSet.
type WorkspaceTag string

// Rectangle is a pixel-space rectangle on the X root window.
type Rectangle struct {
	X, Y int
	W, H uint
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}

// Gap is the per-edge pixel inset subtracted from a screen's rectangle to
// reserve space for external bars.
type Gap struct {
	Top, Bottom, Left, Right int
}

// ScreenDetail is a screen's full rectangle plus the gap applied to it.
type ScreenDetail struct {
	Rect Rectangle
	Gap  Gap
}

// Usable returns the drawable area: Rect shrunk by Gap.
func (d ScreenDetail) Usable() Rectangle {
	r := d.Rect
	x := r.X + d.Gap.Left
	y := r.Y + d.Gap.Top
	w := int(r.W) - d.Gap.Left - d.Gap.Right
	h := int(r.H) - d.Gap.Top - d.Gap.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rectangle{X: x, Y: y, W: uint(w), H: uint(h)}
}

// RationalRect describes a floating window's position and size as a
// fraction, in [0,1], of its screen's rectangle.
type RationalRect struct {
	X, Y, W, H float64
}

// Scale maps a RationalRect onto a concrete screen rectangle.
func (rr RationalRect) Scale(screen Rectangle) Rectangle {
	return Rectangle{
		X: screen.X + int(rr.X*float64(screen.W)),
		Y: screen.Y + int(rr.Y*float64(screen.H)),
		W: uint(rr.W * float64(screen.W)),
		H: uint(rr.H * float64(screen.H)),
	}
}

// WindowRect pairs a window with its computed rectangle. Layouts return
// these in desired stacking order, bottom to top.
type WindowRect struct {
	Window WindowID
	Rect   Rectangle
}

// Message is an open, extensible sum type dispatched to layouts via
// HandleMessage. The core defines a closed set of well-known kinds; any
// other payload is carried in Extra, tagged by Kind == KindExtra.
type Message struct {
	Kind  MessageKind
	Delta int    // for KindIncMasterN
	Extra any    // for KindExtra: user-defined payload
	Type  string // for KindExtra: a name identifying Extra's concrete type
}

// MessageKind enumerates the well-known messages every layout should
// consider, plus the escape hatch for user extension.
type MessageKind int

const (
	KindHide MessageKind = iota
	KindReleaseResources
	KindIncMasterN
	KindShrink
	KindExpand
	KindNextLayout
	KindFirstLayout
	KindExtra
)

func (k MessageKind) String() string {
	switch k {
	case KindHide:
		return "Hide"
	case KindReleaseResources:
		return "ReleaseResources"
	case KindIncMasterN:
		return "IncMasterN"
	case KindShrink:
		return "Shrink"
	case KindExpand:
		return "Expand"
	case KindNextLayout:
		return "NextLayout"
	case KindFirstLayout:
		return "FirstLayout"
	case KindExtra:
		return "Extra"
	default:
		return "Unknown"
	}
}

// Well-known message constructors.
func Hide() Message             { return Message{Kind: KindHide} }
func ReleaseResources() Message { return Message{Kind: KindReleaseResources} }
func IncMasterN(n int) Message  { return Message{Kind: KindIncMasterN, Delta: n} }
func Shrink() Message           { return Message{Kind: KindShrink} }
func Expand() Message           { return Message{Kind: KindExpand} }
func NextLayout() Message       { return Message{Kind: KindNextLayout} }
func FirstLayout() Message      { return Message{Kind: KindFirstLayout} }

// ExtraMessage wraps an arbitrary, user-defined payload. typ identifies
// the concrete type of payload so layouts can downcast defensively;
// layouts that don't recognise typ must ignore the message.
func ExtraMessage(typ string, payload any) Message {
	return Message{Kind: KindExtra, Type: typ, Extra: payload}
}

// Layout is the capability interface every layout algorithm implements.
// It is defined here, next to Workspace which stores one, rather than in
// the layout package, so that the two packages don't import each other.
type Layout interface {
	// DoLayout computes a rectangle for every non-floating window in st,
	// in desired stacking order (bottom to top), against the given
	// screen rectangle. It may return an updated Layout reflecting
	// internal state changes (e.g. a resize); nil means "unchanged".
	DoLayout(screen Rectangle, st *Stack[WindowID]) ([]WindowRect, Layout, error)

	// HandleMessage lets a layout react to a Message. A nil return means
	// "not handled, no change, no refresh needed"; a non-nil Layout
	// (which may be the receiver itself if only internal state mutated
	// immutably) means the layout changed and a refresh is needed.
	HandleMessage(msg Message) (Layout, error)

	// Description is the human-readable name shown for the current
	// layout.
	Description() string

	// Encode serializes the layout to a self-describing string that
	// Decode (registered separately, see package layout) can parse back.
	Encode() string
}
