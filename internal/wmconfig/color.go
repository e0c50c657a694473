package wmconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// parseColor turns a "#rrggbb" string into the pixel value
// ChangeWindowAttributes(CwBorderPixel) expects.
func parseColor(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}
