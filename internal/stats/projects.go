package stats

import (
	"sort"
	"strings"

	"github.com/verte-zerg/worklog/internal/earnings"
)

const noProjectLabel = "(no project)"

// ProjectTotal is the gross hours and pay logged against one project title.
type ProjectTotal struct {
	Title   string
	Entries int
	Hours   float64
	Pay     float64
}

// TopProjects returns the n projects with the most hours. n <= 0 returns all.
// Titles are compared after trimming; blank titles are grouped together.
func TopProjects(entries []earnings.Entry, n int) []ProjectTotal {
	if len(entries) == 0 {
		return nil
	}
	byTitle := map[string]*ProjectTotal{}
	for _, e := range entries {
		title := strings.TrimSpace(e.ProjectTitle)
		if title == "" {
			title = noProjectLabel
		}
		total, ok := byTitle[title]
		if !ok {
			total = &ProjectTotal{Title: title}
			byTitle[title] = total
		}
		total.Entries++
		total.Hours += e.Hours()
		total.Pay += e.Pay()
	}
	items := make([]ProjectTotal, 0, len(byTitle))
	for _, total := range byTitle {
		items = append(items, *total)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Hours == items[j].Hours {
			return items[i].Title < items[j].Title
		}
		return items[i].Hours > items[j].Hours
	})
	if n > 0 && n < len(items) {
		items = items[:n]
	}
	return items
}
