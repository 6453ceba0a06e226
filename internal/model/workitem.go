package model

import "time"

// User is a person in the work-item system (assignee or the caller).
type User struct {
	ID   string `json:"gid"`
	Name string `json:"name,omitempty"`
}

// ProjectRef is the project half of a membership.
type ProjectRef struct {
	ID   string `json:"gid"`
	Name string `json:"name,omitempty"`
}

// SectionRef is a board column inside a project.
type SectionRef struct {
	ID   string `json:"gid"`
	Name string `json:"name,omitempty"`
}

// Membership associates a work item with one project and optionally one section.
type Membership struct {
	Project *ProjectRef `json:"project,omitempty"`
	Section *SectionRef `json:"section,omitempty"`
}

// Key identifies a membership by its (project, section) pair.
func (m Membership) Key() string {
	var p, s string
	if m.Project != nil {
		p = m.Project.ID
	}
	if m.Section != nil {
		s = m.Section.ID
	}
	return p + ":" + s
}

// Tag is a label attached to a work item.
type Tag struct {
	ID   string `json:"gid"`
	Name string `json:"name,omitempty"`
}

// WorkItem is one unit of work as seen through any of its projects.
// A zero CreatedAt means the creation time is unknown; a nil Completed means unknown.
type WorkItem struct {
	ID          string       `json:"gid"`
	Title       string       `json:"name"`
	CreatedAt   time.Time    `json:"created_at,omitzero"`
	Permalink   string       `json:"permalink_url,omitempty"`
	Assignee    *User        `json:"assignee,omitempty"`
	Completed   *bool        `json:"completed,omitempty"`
	Memberships []Membership `json:"memberships,omitempty"`
	Tags        []Tag        `json:"tags,omitempty"`
}

// Clone returns a deep copy of the item.
func (w WorkItem) Clone() WorkItem {
	out := w
	if w.Assignee != nil {
		a := *w.Assignee
		out.Assignee = &a
	}
	if w.Completed != nil {
		c := *w.Completed
		out.Completed = &c
	}
	if w.Memberships != nil {
		out.Memberships = make([]Membership, len(w.Memberships))
		for i, m := range w.Memberships {
			out.Memberships[i] = m.clone()
		}
	}
	if w.Tags != nil {
		out.Tags = append([]Tag{}, w.Tags...)
	}
	return out
}

func (m Membership) clone() Membership {
	out := Membership{}
	if m.Project != nil {
		p := *m.Project
		out.Project = &p
	}
	if m.Section != nil {
		s := *m.Section
		out.Section = &s
	}
	return out
}

// CloneWorkItems deep-copies a collection, preserving nil.
func CloneWorkItems(items []WorkItem) []WorkItem {
	if items == nil {
		return nil
	}
	out := make([]WorkItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// Project is a container of work items inside a workspace.
type Project struct {
	ID   string `json:"gid"`
	Name string `json:"name"`
}

// Workspace is the top-level tenant in the work-item system.
type Workspace struct {
	ID   string `json:"gid"`
	Name string `json:"name"`
}
