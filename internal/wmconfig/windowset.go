package wmconfig

import (
	"fmt"
	"strings"

	"github.com/tilewm/tilewm/internal/layout"
	"github.com/tilewm/tilewm/internal/stack"
)

// reservedTagChars are the delimiters stack.Encode uses to frame a
// workspace; a tag containing one would make a --resume blob
// ambiguous to parse back.
const reservedTagChars = "|^,:;{}[]()"

// BuildWindowSet constructs the starting WindowSet: one workspace per
// configured tag, each given the next layout in cfg.Layouts in
// round-robin order, bound onto the given screens.
func BuildWindowSet(cfg *Config, screens []stack.ScreenDetail) (*stack.WindowSet, error) {
	if len(cfg.Tags) == 0 {
		return nil, fmt.Errorf("config has no workspace tags")
	}
	if len(cfg.Layouts) == 0 {
		return nil, fmt.Errorf("config has no layouts")
	}

	tags := make([]stack.WorkspaceTag, len(cfg.Tags))
	for i, t := range cfg.Tags {
		if strings.ContainsAny(t, reservedTagChars) {
			return nil, fmt.Errorf("workspace tag %q uses a reserved character (%s)", t, reservedTagChars)
		}
		tags[i] = stack.WorkspaceTag(t)
	}

	n := 0
	var decodeErr error
	next := func() stack.Layout {
		encoded := cfg.Layouts[n%len(cfg.Layouts)]
		n++
		l, err := layout.Decode(encoded)
		if err != nil && decodeErr == nil {
			decodeErr = fmt.Errorf("layout %q: %w", encoded, err)
		}
		return l
	}

	gapped := make([]stack.ScreenDetail, len(screens))
	for i, s := range screens {
		s.Gap = cfg.Gap
		gapped[i] = s
	}

	ws := stack.NewWindowSet(tags, next, gapped)
	if decodeErr != nil {
		return nil, decodeErr
	}
	return ws, nil
}
