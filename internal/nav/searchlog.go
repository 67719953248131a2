package nav

import "fmt"

// Event categories recorded by a Pathfinder.
const (
	catSearch    = "search"
	catForward   = "forward"
	catBacktrace = "backtrace"
)

// SearchLogEntry is one recorded event during a search episode.
type SearchLogEntry struct {
	Episode  int
	Category string  // search, forward, backtrace
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[E=003] search    found            (12,7 east)
func (e SearchLogEntry) String() string {
	return fmt.Sprintf("[E=%03d] %-9s %-18s %s",
		e.Episode, e.Category, e.Key, e.Value)
}

// SearchLog collects structured events across search episodes. It is
// unbounded and machine-readable, intended for headless reports and
// tests rather than interactive display.
type SearchLog struct {
	entries []SearchLogEntry
	episode int
}

// NewSearchLog creates an empty log.
func NewSearchLog() *SearchLog {
	return &SearchLog{}
}

// BeginEpisode advances the episode counter stamped on later entries.
func (sl *SearchLog) BeginEpisode() {
	if sl == nil {
		return
	}
	sl.episode++
}

// add records a new entry. Safe on a nil log so a Pathfinder without an
// attached log pays only the nil check.
func (sl *SearchLog) add(category, key, value string, numVal float64) {
	if sl == nil {
		return
	}
	sl.entries = append(sl.entries, SearchLogEntry{
		Episode:  sl.episode,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries returns all recorded entries.
func (sl *SearchLog) Entries() []SearchLogEntry {
	if sl == nil {
		return nil
	}
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SearchLog) Filter(category, key string) []SearchLogEntry {
	var out []SearchLogEntry
	for _, e := range sl.Entries() {
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

// Last returns the most recent entry matching category and key, if any.
func (sl *SearchLog) Last(category, key string) (SearchLogEntry, bool) {
	matches := sl.Filter(category, key)
	if len(matches) == 0 {
		return SearchLogEntry{}, false
	}
	return matches[len(matches)-1], true
}

// Reset discards all entries and restarts the episode counter.
func (sl *SearchLog) Reset() {
	if sl == nil {
		return
	}
	sl.entries = sl.entries[:0]
	sl.episode = 0
}
