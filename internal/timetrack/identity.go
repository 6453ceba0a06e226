package timetrack

import (
	"net/url"
	"regexp"
	"strings"

	"task-digest/internal/model"
)

// DefaultWorkItemHost is matched as a substring of a task URL's hostname.
const DefaultWorkItemHost = "asana.com"

var itemIDPattern = regexp.MustCompile(`^\d{10,}$`)

// RecoverTaskID returns the work-item id an entry was booked against, or "" when none can
// be recovered. A URL on the work-item host wins over the structured task id: the last path
// segment of ten or more digits is taken. Otherwise the task id is used when it is such a
// number, optionally behind an integration prefix ("as:1234567890").
//
// This is a heuristic. An id from another identity space that happens to be numeric will be
// attributed to whatever work item shares it.
func RecoverTaskID(e model.TimeEntry, workItemHost string) string {
	if id := idFromURL(e.TaskURL, workItemHost); id != "" {
		return id
	}

	id := e.TaskID
	if i := strings.LastIndexByte(id, ':'); i >= 0 {
		id = id[i+1:]
	}
	if itemIDPattern.MatchString(id) {
		return id
	}
	return ""
}

func idFromURL(raw, host string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	if host == "" {
		host = DefaultWorkItemHost
	}
	if !strings.Contains(u.Hostname(), host) {
		return ""
	}

	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if itemIDPattern.MatchString(segments[i]) {
			return segments[i]
		}
	}
	return ""
}

// Summarize totals seconds per recovered task id. Entries without one are dropped.
func Summarize(entries []model.TimeEntry, workItemHost string) []model.TaskTimeSummary {
	out := []model.TaskTimeSummary{}
	index := make(map[string]int)
	for _, e := range entries {
		id := RecoverTaskID(e, workItemHost)
		if id == "" {
			continue
		}
		i, ok := index[id]
		if !ok {
			index[id] = len(out)
			out = append(out, model.TaskTimeSummary{TaskID: id})
			i = len(out) - 1
		}
		out[i].TotalSeconds += e.Seconds
	}
	return out
}

// TotalsByTask indexes summaries by task id.
func TotalsByTask(summaries []model.TaskTimeSummary) map[string]int64 {
	m := make(map[string]int64, len(summaries))
	for _, s := range summaries {
		m[s.TaskID] += s.TotalSeconds
	}
	return m
}
