package parser

import (
	"strconv"
	"strings"

	"github.com/ndisidore/ensemble/pkg/catalog"
)

// parseInt converts trimmed decimal text, reporting whether it succeeded.
func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// toInt converts decimal text, yielding 0 for anything malformed.
func toInt(s string) int {
	n, _ := parseInt(s)
	return n
}

// toBool treats any non-zero integer as true.
func toBool(s string) bool { return toInt(s) != 0 }

// percent converts "80%" or "80" to 80.
func percent(s string) int {
	return toInt(strings.TrimSuffix(s, "%"))
}

// pitchRange converts "min-max". Any other shape yields the full range.
func pitchRange(s string) catalog.PitchRange {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return catalog.FullRange()
	}
	return catalog.PitchRange{Min: toInt(parts[0]), Max: toInt(parts[1])}
}

// boolAttr reads a case-insensitive "true"/"false" attribute. Absent or
// other values yield def.
func boolAttr(c Cursor, name string, def bool) bool {
	v, ok := c.Attr(name)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}

// intAttr reads an integer attribute, yielding def when it is absent and 0
// when it is malformed.
func intAttr(c Cursor, name string, def int) int {
	v, ok := c.Attr(name)
	if !ok {
		return def
	}
	return toInt(v)
}

// staffIndex reads the one-based staff attribute as a clamped zero-based
// index.
func staffIndex(c Cursor) int {
	v, _ := c.Attr(AttrStaff)
	return clampStaff(toInt(v) - 1)
}

func clampStaff(i int) int {
	return max(0, min(i, catalog.MaxStaves-1))
}
