package utils

import (
	"strings"
	"time"
)

// DisplayLayout renders timestamps for report rows, zone name included.
const DisplayLayout = "2006-01-02 15:04:05 MST"

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// FormatLocal renders t in the named timezone; an unknown zone falls back to UTC.
func FormatLocal(t time.Time, tzName string) string {
	if t.IsZero() {
		return ""
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayLayout)
}

// FormatEpoch renders epoch seconds in the named timezone. Zero (the Graph
// API's "never" / "missing") renders empty.
func FormatEpoch(sec int64, tzName string) string {
	if sec == 0 {
		return ""
	}
	return FormatLocal(time.Unix(sec, 0).UTC(), tzName)
}

// SplitIDList normalizes a free-text id list: commas become newlines, each
// line is trimmed, empties drop out.
func SplitIDList(raw string) []string {
	var ids []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, ",", "\n"), "\n") {
		if id := strings.TrimSpace(line); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
