package workitem

import "task-digest/internal/model"

// Dedupe collapses records sharing an ID into one, in first-seen order.
// Memberships are unioned by (project, section) and tags by ID. A present assignee and a
// defined completion flag win over missing ones; the earliest known creation time is kept.
// Other scalars keep their first-seen value. The input is not modified.
func Dedupe(items []model.WorkItem) []model.WorkItem {
	if items == nil {
		return nil
	}

	out := make([]model.WorkItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, it := range items {
		i, seen := index[it.ID]
		if !seen {
			index[it.ID] = len(out)
			out = append(out, it.Clone())
			continue
		}
		merge(&out[i], it.Clone())
	}
	return out
}

func merge(dst *model.WorkItem, src model.WorkItem) {
	dst.Memberships = unionMemberships(dst.Memberships, src.Memberships)
	dst.Tags = unionTags(dst.Tags, src.Tags)

	if dst.Assignee == nil && src.Assignee != nil {
		dst.Assignee = src.Assignee
	}
	if dst.Completed == nil && src.Completed != nil {
		dst.Completed = src.Completed
	}

	switch {
	case dst.CreatedAt.IsZero():
		dst.CreatedAt = src.CreatedAt
	case !src.CreatedAt.IsZero() && src.CreatedAt.Before(dst.CreatedAt):
		dst.CreatedAt = src.CreatedAt
	}
}

func unionMemberships(a, b []model.Membership) []model.Membership {
	var merged []model.Membership
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, list := range [][]model.Membership{a, b} {
		for _, m := range list {
			k := m.Key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			merged = append(merged, m)
		}
	}
	if len(merged) == 0 {
		if a != nil {
			return a
		}
		return b
	}
	return merged
}

func unionTags(a, b []model.Tag) []model.Tag {
	var merged []model.Tag
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, list := range [][]model.Tag{a, b} {
		for _, t := range list {
			if _, ok := seen[t.ID]; ok {
				continue
			}
			seen[t.ID] = struct{}{}
			merged = append(merged, t)
		}
	}
	if len(merged) == 0 {
		if a != nil {
			return a
		}
		return b
	}
	return merged
}
