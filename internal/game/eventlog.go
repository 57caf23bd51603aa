package game

import (
	"fmt"
	"strings"
)

// EventLogEntry is one recorded event during a headless simulation run.
type EventLogEntry struct {
	Tick     int
	Category string  // growth, trail, hazard, gate, player, milestone
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] growth   node_placed   id=7 from=3
func (e EventLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-9s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// EventLog collects structured events during a headless simulation. It is
// unbounded and machine-readable, consumed by tests and the headless CLI.
type EventLog struct {
	entries []EventLogEntry
	verbose bool
}

// NewEventLog creates an EventLog. If verbose is true, per-tick position and
// stat entries are also recorded.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (el *EventLog) Add(tick int, category, key, value string, numVal float64) {
	el.entries = append(el.entries, EventLogEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (el *EventLog) AddVerbose(tick int, category, key, value string, numVal float64) {
	if !el.verbose {
		return
	}
	el.Add(tick, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (el *EventLog) Entries() []EventLogEntry { return el.entries }

// Filter returns entries matching the given category and/or key. Pass empty
// string to match any value for that field.
func (el *EventLog) Filter(category, key string) []EventLogEntry {
	var out []EventLogEntry
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match the given category and key.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (el *EventLog) LastOf(category, key string) (EventLogEntry, bool) {
	entries := el.Filter(category, key)
	if len(entries) == 0 {
		return EventLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry reports whether at least one entry matches category, key, and a
// value substring.
func (el *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
