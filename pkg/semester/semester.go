// Package semester implements the facility's half-year scheduling labels.
//
// A semester is written <YYYY><A|B>: "A" covers roughly the first half of
// the calendar year, "B" the second. Stepping backwards toggles the term and
// decrements the year on the B→A transition.
package semester

import (
	"fmt"
	"regexp"
	"strconv"
)

var labelPattern = regexp.MustCompile(`^(\d{4})([AB])$`)

// Valid reports whether label matches the <YYYY><A|B> pattern.
func Valid(label string) bool {
	return labelPattern.MatchString(label)
}

// Previous returns count semesters strictly before current, nearest first.
// A malformed current yields an empty slice rather than an error; dropdown
// callers render nothing instead of failing.
func Previous(current string, count int) []string {
	m := labelPattern.FindStringSubmatch(current)
	if m == nil {
		return nil
	}

	year, _ := strconv.Atoi(m[1])
	term := m[2]

	semesters := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if term == "A" {
			term = "B"
			year--
		} else {
			term = "A"
		}
		semesters = append(semesters, fmt.Sprintf("%04d%s", year, term))
	}
	return semesters
}

// Options builds the selector list for semester dropdowns: the newest
// submission-open semester (when not already present), then the current
// semester, then count previous ones.
func Options(current, newest string, count int) []string {
	if !Valid(current) {
		return nil
	}

	options := append([]string{current}, Previous(current, count)...)
	if newest != "" && newest != current {
		seen := false
		for _, s := range options {
			if s == newest {
				seen = true
				break
			}
		}
		if !seen {
			options = append([]string{newest}, options...)
		}
	}
	return options
}
