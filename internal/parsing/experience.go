package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// presentEndDate is assumed when a date line carries a single date.
const presentEndDate = "Present"

var experienceDatePattern = regexp.MustCompile(
	`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}`)

// experienceBuilder accumulates one experience entry during the scan.
type experienceBuilder struct {
	entry            types.Experience
	responsibilities []string
}

func (b *experienceBuilder) build() types.Experience {
	b.entry.Responsibilities = strings.Join(b.responsibilities, "\n")
	return b.entry
}

// ExtractExperience scans the experience section line by line. A line
// carrying a month-plus-year token opens a new entry; its first two
// date tokens become the start and end dates, with the end defaulting
// to "Present". Between date lines, bullet lines accumulate as
// responsibilities, while the first two plain lines become title and
// company in that order. Zero entries yield a single blank placeholder.
func ExtractExperience(text string) []types.Experience {
	var entries []types.Experience
	var current *experienceBuilder

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if dates := experienceDatePattern.FindAllString(line, -1); len(dates) > 0 {
			if current != nil {
				entries = append(entries, current.build())
			}
			current = &experienceBuilder{}
			current.entry.StartDate = dates[0]
			if len(dates) > 1 {
				current.entry.EndDate = dates[1]
			} else {
				current.entry.EndDate = presentEndDate
			}
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case isBulletLine(line):
			current.responsibilities = append(current.responsibilities, line)
		case current.entry.Title == "":
			current.entry.Title = line
		case current.entry.Company == "":
			current.entry.Company = line
		default:
			current.responsibilities = append(current.responsibilities, line)
		}
	}

	if current != nil {
		entries = append(entries, current.build())
	}
	if len(entries) == 0 {
		entries = []types.Experience{{}}
	}
	return entries
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")
}
