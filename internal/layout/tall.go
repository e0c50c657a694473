// Package layout implements the built-in tiling algorithms (Tall,
// Mirror, Full, Choose) and the encode/decode registry that lets a
// layout's transient state survive a restart.
package layout

import (
	"fmt"

	"github.com/tilewm/tilewm/internal/stack"
)

const (
	minRatio = 0.05
	maxRatio = 0.95
)

// renderOrder returns a workspace's windows in the reverse of the
// zipper's ToList order. Since InsertUp pushes each displaced focus
// onto Down, a run of insertions leaves the first-inserted window at
// the head and the newest one last. Master-pane assignment
// and every built-in layout read the stack in this order, so that
// opening new windows grows the stack without disturbing who holds the
// master pane.
func renderOrder(st *stack.Stack[stack.WindowID]) []stack.WindowID {
	all := st.ToList()
	out := make([]stack.WindowID, len(all))
	for i, w := range all {
		out[len(all)-1-i] = w
	}
	return out
}

// Tall splits the screen into a master column on the left holding the
// first NMaster windows stacked vertically, and a secondary column on
// the right holding the rest.
type Tall struct {
	NMaster int
	Delta   float64
	Ratio   float64
}

// NewTall returns a Tall layout with the given master count, resize
// step, and initial master-column fraction.
func NewTall(nmaster int, delta, ratio float64) *Tall {
	return &Tall{NMaster: nmaster, Delta: delta, Ratio: clampRatio(ratio)}
}

func clampRatio(r float64) float64 {
	if r < minRatio {
		return minRatio
	}
	if r > maxRatio {
		return maxRatio
	}
	return r
}

func (t *Tall) Description() string { return "Tall" }

func (t *Tall) DoLayout(screen stack.Rectangle, st *stack.Stack[stack.WindowID]) ([]stack.WindowRect, stack.Layout, error) {
	if st == nil {
		return nil, nil, nil
	}
	ws := renderOrder(st)
	nmaster := t.NMaster
	if nmaster > len(ws) {
		nmaster = len(ws)
	}
	if nmaster < 0 {
		nmaster = 0
	}

	master := ws[:nmaster]
	rest := ws[nmaster:]

	var out []stack.WindowRect
	if len(rest) == 0 {
		out = append(out, tileColumn(master, screen)...)
		return out, nil, nil
	}
	if nmaster == 0 {
		out = append(out, tileColumn(rest, screen)...)
		return out, nil, nil
	}

	masterWidth := uint(float64(screen.W) * t.Ratio)
	masterRect := stack.Rectangle{X: screen.X, Y: screen.Y, W: masterWidth, H: screen.H}
	secondaryRect := stack.Rectangle{X: screen.X + int(masterWidth), Y: screen.Y, W: screen.W - masterWidth, H: screen.H}

	out = append(out, tileColumn(master, masterRect)...)
	out = append(out, tileColumn(rest, secondaryRect)...)
	return out, nil, nil
}

// tileColumn stacks ws vertically inside rect, each window getting an
// equal share of the height.
func tileColumn(ws []stack.WindowID, rect stack.Rectangle) []stack.WindowRect {
	if len(ws) == 0 {
		return nil
	}
	out := make([]stack.WindowRect, 0, len(ws))
	h := rect.H / uint(len(ws))
	y := rect.Y
	for i, w := range ws {
		rh := h
		if i == len(ws)-1 {
			rh = rect.H - h*uint(len(ws)-1)
		}
		out = append(out, stack.WindowRect{Window: w, Rect: stack.Rectangle{X: rect.X, Y: y, W: rect.W, H: rh}})
		y += int(h)
	}
	return out
}

func (t *Tall) HandleMessage(msg stack.Message) (stack.Layout, error) {
	switch msg.Kind {
	case stack.KindIncMasterN:
		n := t.NMaster + msg.Delta
		if n < 0 {
			n = 0
		}
		return &Tall{NMaster: n, Delta: t.Delta, Ratio: t.Ratio}, nil
	case stack.KindShrink:
		return &Tall{NMaster: t.NMaster, Delta: t.Delta, Ratio: clampRatio(t.Ratio - t.Delta)}, nil
	case stack.KindExpand:
		return &Tall{NMaster: t.NMaster, Delta: t.Delta, Ratio: clampRatio(t.Ratio + t.Delta)}, nil
	default:
		return nil, nil
	}
}

func (t *Tall) Encode() string {
	return fmt.Sprintf("Tall(%d,%g,%g)", t.NMaster, t.Delta, t.Ratio)
}

func decodeTall(args string) (stack.Layout, error) {
	fields := splitArgs(args)
	if len(fields) != 3 {
		return nil, fmt.Errorf("decode Tall: want 3 fields, got %d", len(fields))
	}
	var nmaster int
	var delta, ratio float64
	if _, err := fmt.Sscanf(fields[0], "%d", &nmaster); err != nil {
		return nil, fmt.Errorf("decode Tall: %w", err)
	}
	if _, err := fmt.Sscanf(fields[1], "%g", &delta); err != nil {
		return nil, fmt.Errorf("decode Tall: %w", err)
	}
	if _, err := fmt.Sscanf(fields[2], "%g", &ratio); err != nil {
		return nil, fmt.Errorf("decode Tall: %w", err)
	}
	return NewTall(nmaster, delta, ratio), nil
}

func init() {
	Register("Tall", decodeTall)
}
