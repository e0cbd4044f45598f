package transcript

import "unicode/utf8"

const (
	// Capacity bounds the visible transcript; the oldest line falls off first.
	Capacity = 20
	// MaxEntryLen caps a single entry in bytes. Longer text is truncated on
	// append rather than split across entries.
	MaxEntryLen = 512
)

// Log is a fixed-capacity FIFO of immutable text entries, pre-allocated at
// full capacity. It is owned by the single event-processing loop and is not
// safe for concurrent use.
type Log struct {
	entries []string
	head    int // index of the oldest entry
	count   int // valid entries (0..Capacity)
}

func NewLog() *Log {
	return &Log{entries: make([]string, Capacity)}
}

// Append inserts text as the newest entry, evicting the single oldest entry
// when the log is already full.
func (l *Log) Append(text string) {
	if len(text) > MaxEntryLen {
		cut := MaxEntryLen
		// Never cut through a multi-byte rune.
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	if l.count == Capacity {
		// The slot holding the oldest entry becomes the newest one.
		l.entries[l.head] = text
		l.head = (l.head + 1) % Capacity
		return
	}
	l.entries[(l.head+l.count)%Capacity] = text
	l.count++
}

func (l *Log) Len() int {
	return l.count
}

// Clear drops every entry. Capacity is unchanged.
func (l *Log) Clear() {
	for i := range l.entries {
		l.entries[i] = ""
	}
	l.head = 0
	l.count = 0
}

// NewestFirst returns a snapshot of the entries in reverse insertion order,
// suitable for bottom-anchored rendering. The snapshot does not change when
// the log does.
func (l *Log) NewestFirst() []string {
	out := make([]string, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.entries[(l.head+l.count-1-i)%Capacity]
	}
	return out
}

// OldestFirst returns a snapshot in insertion order.
func (l *Log) OldestFirst() []string {
	out := make([]string, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.entries[(l.head+i)%Capacity]
	}
	return out
}
