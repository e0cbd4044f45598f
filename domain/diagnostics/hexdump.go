package diagnostics

import (
	"fmt"
	"strings"
)

// FormatHex renders bytes as lowercase hex pairs, each followed by a single
// space: "de ad be ef ". This is the on-screen form.
func FormatHex(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for _, v := range b {
		_, _ = fmt.Fprintf(&sb, "%02x ", v)
	}
	return sb.String()
}

// FormatHexWrapped is FormatHex with a line break before every 16th byte,
// used for the out-of-band diagnostic trace.
func FormatHexWrapped(b []byte) string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 && i%16 == 0 {
			sb.WriteByte('\n')
		}
		_, _ = fmt.Fprintf(&sb, "%02x ", v)
	}
	return sb.String()
}
