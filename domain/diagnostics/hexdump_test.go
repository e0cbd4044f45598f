package diagnostics

import (
	"strings"
	"testing"
)

func TestFormatHex(t *testing.T) {
	got := FormatHex([]byte{0xde, 0xad, 0xbe, 0xef})
	if got != "de ad be ef " {
		t.Fatalf("expected %q, got %q", "de ad be ef ", got)
	}
}

func TestFormatHexEmpty(t *testing.T) {
	if got := FormatHex(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestFormatHexLowercase(t *testing.T) {
	got := FormatHex([]byte{0xAB, 0x0F})
	if got != "ab 0f " {
		t.Fatalf("expected lowercase pairs %q, got %q", "ab 0f ", got)
	}
}

func TestFormatHexWrapped(t *testing.T) {
	b := make([]byte, 32)
	got := FormatHexWrapped(b)

	rows := strings.Split(got, "\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for 32 bytes, got %d", len(rows))
	}
	want := strings.Repeat("00 ", 16)
	for i, row := range rows {
		if row != want {
			t.Errorf("row %d: expected %q, got %q", i, want, row)
		}
	}
}

func TestFormatHexWrappedShortInput(t *testing.T) {
	got := FormatHexWrapped([]byte{0x01, 0x02})
	if got != "01 02 " {
		t.Fatalf("expected single row %q, got %q", "01 02 ", got)
	}
}
