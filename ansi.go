package img2ascii

import (
	"strconv"
	"strings"
)

const (
	ESC = "\u001b"

	// Reset clears all SGR attributes.
	Reset = ESC + "[0m"

	// colorOverhead is the longest true-color escape plus the reset:
	// len("\x1b[38;2;255;255;255m") + len("\x1b[0m").
	colorOverhead = 19 + 4
)

// TrueColorFG returns the SGR sequence selecting a 24-bit foreground
// color, ESC[38;2;R;G;Bm.
func TrueColorFG(r, g, b uint8) string {
	return string(appendTrueColorFG(nil, r, g, b))
}

// appendTrueColorFG appends the true-color foreground sequence to buf
// without going through fmt.
func appendTrueColorFG(buf []byte, r, g, b uint8) []byte {
	buf = append(buf, ESC+"[38;2;"...)
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	return append(buf, 'm')
}

// StripANSI removes CSI escape sequences (ESC '[' ... final byte) from s,
// leaving only the visible glyphs.
func StripANSI(s string) string {
	if !strings.Contains(s, ESC) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ESC[0] {
			sb.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '[' {
			i += 2
			// Parameter and intermediate bytes, then one final byte
			// in 0x40-0x7E.
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
		}
	}
	return sb.String()
}
