package repository

import "task-digest/internal/model"

// ListProjectsOptions pages a workspace's projects.
type ListProjectsOptions struct {
	Limit  int
	Offset string // Continuation cursor from the previous page ("" for the first page)
}

// ListItemsOptions pages a project's items.
type ListItemsOptions struct {
	Limit  int
	Offset string
	Fields []string // Field projection; nil lets the remote choose
}

type GetUserOptions struct {
	Fields []string
}

// ProjectPage is one page of projects. An empty NextOffset ends the listing.
type ProjectPage struct {
	Projects   []model.Project
	NextOffset string
}

// ItemPage is one page of items. An empty NextOffset ends the listing.
type ItemPage struct {
	Items      []model.WorkItem
	NextOffset string
}
