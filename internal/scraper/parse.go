package scraper

import (
	"regexp"
	"strings"

	"fleettrack/internal/registry"
)

// NoRecentStatus is the degraded status text used when a history page
// yields no parseable entry. Parsing never fails a run on its own.
const NoRecentStatus = "No recent status found."

var (
	yearRe     = regexp.MustCompile(`202[3-7]`)
	lineYearRe = regexp.MustCompile(`^202[3-7]`)
	dateRe     = regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2}`)
)

// statusKeywords gate which lines count as status entries. History pages
// mix narrative text, navigation and photo captions; only lines that
// describe ship activity qualify.
var statusKeywords = []string{
	"moored", "anchored", "underway", "arrived", "departed",
	"transited", "operations", "returned", "participated", "conducted",
	"moved to", "visited", "pulled into", "sea trials", "flight deck",
	"undocked", "homeport", "recently", "deployed",
}

// ParseStatusEntry scans a history page's text for the most recent
// status entry. Year headers appear on their own or prefix a line;
// entries below a header inherit its year. The scan prefers 2025-2027
// entries, falls back to 2024, and degrades to NoRecentStatus when
// nothing qualifies.
func ParseStatusEntry(text string) (year, entry string) {
	currentYear := "Unknown"
	if years := yearRe.FindAllString(text, -1); len(years) > 0 {
		var priority []string
		for _, y := range years {
			if y == "2025" || y == "2026" || y == "2027" {
				priority = append(priority, y)
			}
		}
		if len(priority) == 0 {
			for _, y := range years {
				if y == "2024" {
					priority = append(priority, y)
				}
			}
		}
		if len(priority) > 0 {
			currentYear = priority[len(priority)-1]
		} else {
			currentYear = years[len(years)-1]
		}
	}

	type datedLine struct {
		text string
		year string
	}
	lines := strings.Split(text, "\n")
	processed := make([]datedLine, 0, len(lines))
	runningYear := currentYear
	for _, line := range lines {
		if m := lineYearRe.FindString(line); m != "" {
			runningYear = m
		}
		processed = append(processed, datedLine{text: line, year: runningYear})
	}

	// Latest entries are at the bottom of the page, so scan backwards.
	find := func(yearOK func(string) bool) (string, string, bool) {
		for i := len(processed) - 1; i >= 0; i-- {
			line := processed[i]
			if !yearOK(line.year) {
				continue
			}
			lower := strings.ToLower(line.text)
			if !containsAny(lower, statusKeywords) {
				continue
			}
			// "From <port> - <port>" lines are voyage summaries, not entries.
			if strings.HasPrefix(strings.TrimSpace(lower), "from ") && strings.Contains(lower, " - ") {
				continue
			}
			return line.year, line.text, true
		}
		return "", "", false
	}

	if y, e, ok := find(func(y string) bool { return y == "2025" || y == "2026" || y == "2027" }); ok {
		return y, e
	}
	if y, e, ok := find(func(y string) bool { return y == "2024" }); ok {
		return y, e
	}
	return currentYear, NoRecentStatus
}

// CategorizeLocation maps a status entry to a location tag. The
// rightmost keyword in the text wins since entries narrate movements in
// order. A trailing "departed <port>" with no later location means the
// ship is in open water off that port. With no match at all the
// homeport's ocean is assumed.
func CategorizeLocation(text, homeport string) string {
	lower := strings.ToLower(text)

	for _, dp := range registry.DeparturePatterns {
		idx := strings.LastIndex(lower, dp.Phrase)
		if idx < 0 {
			continue
		}
		remaining := lower[idx+len(dp.Phrase):]
		subsequent := false
		for _, lk := range registry.LocationKeywordTable {
			if containsAny(remaining, lk.Keywords) {
				subsequent = true
				break
			}
		}
		if !subsequent {
			return dp.Location
		}
	}

	lastMatch := ""
	lastPos := -1
	for _, lk := range registry.LocationKeywordTable {
		for _, kw := range lk.Keywords {
			if idx := strings.LastIndex(lower, kw); idx > lastPos {
				lastPos = idx
				lastMatch = lk.Location
			}
		}
	}
	if lastMatch != "" {
		return lastMatch
	}

	return registry.HomeportFallback(homeport)
}

// ExtractDate returns the last "Mon D"-style date mentioned in the
// entry, or "" when none is present.
func ExtractDate(text string) string {
	matches := dateRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1]
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
