package pkg

import "github.com/hansbonini/parktools/pkg/common"

// The classic game stores text in a single byte character set that is
// mostly Latin-1 with a handful of private codepoints. Multi byte and
// unmappable runes degrade to '?'.

// specialChars maps runes onto the game's private codepoints
var specialChars = map[rune]byte{
	'‘': 0xB4, // left single quote
	'’': 0xB4, // right single quote
	'“': 0xB6, // left double quote
	'”': 0xB6, // right double quote
	'•': 0xB7, // bullet
	'™': 0xB8, // trade mark
	'©': 0xB9, // copyright
	'✕': 0xBA, // cross
	'€': 0xBB, // euro
	'↑': 0xBC, // up arrow
	'↓': 0xBD, // down arrow
	'→': 0xBE, // right arrow
	'←': 0xBF, // left arrow
}

// encodeString converts text into the legacy character set and copies
// it NUL terminated into dst. Text longer than the field is truncated.
func encodeString(dst []byte, text string) {
	if len(dst) == 0 {
		return
	}
	i := 0
	truncated := false
	for _, r := range text {
		if i >= len(dst)-1 {
			truncated = true
			break
		}
		switch {
		case r == 0:
			// embedded NUL would end the string early
		case r < 0x20:
			dst[i] = '?'
			i++
		case r < 0x7F:
			dst[i] = byte(r)
			i++
		default:
			if b, ok := specialChars[r]; ok {
				dst[i] = b
			} else if r >= 0xA0 && r <= 0xFF {
				dst[i] = byte(r)
			} else {
				dst[i] = '?'
			}
			i++
		}
	}
	for ; i < len(dst); i++ {
		dst[i] = 0
	}
	if truncated {
		common.LogWarn(common.WarnTextTruncated, text, len(dst)-1)
	}
}
