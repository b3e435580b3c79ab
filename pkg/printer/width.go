package printer

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// stringWidth returns the display width of s in terminal cells. Tabs count
// as tabWidth cells.
func stringWidth(s string, tabWidth int) int {
	width := 0
	for i, seg := range strings.Split(s, "\t") {
		if i > 0 {
			width += tabWidth
		}
		width += segmentWidth(seg)
	}
	return width
}

// segmentWidth measures tab-free text. ASCII is counted directly; anything
// else goes through grapheme clustering and UAX #11 East Asian width.
func segmentWidth(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			setupGraphemes.Do(grapheme.SetupGraphemeClasses)
			return uax11.StringWidth(grapheme.StringFromString(s), uax11.LatinContext)
		}
	}
	return len(s)
}
