package http

import "task-digest/internal/digest"

type criticalReq struct {
	Assignee string `form:"assignee"`
}

type focusedReq struct {
	Tab string `form:"tab"`
}

type criticalResp struct {
	Stale         []digest.Task           `json:"stale"`
	OverBudget    []digest.Task           `json:"over_budget"`
	Assignees     []digest.AssigneeOption `json:"assignees"`
	TimeAvailable bool                    `json:"time_available"`
}

func newCriticalResp(out digest.CriticalOutput) criticalResp {
	return criticalResp{
		Stale:         nonNil(out.Stale),
		OverBudget:    nonNil(out.OverBudget),
		Assignees:     nonNil(out.Assignees),
		TimeAvailable: out.TimeAvailable,
	}
}

type waitingResp struct {
	Tasks     []digest.Task `json:"tasks"`
	FromCache bool          `json:"from_cache"`
}

type focusedResp struct {
	Tab           string                `json:"tab"`
	Groups        []digest.ProjectGroup `json:"groups"`
	FromCache     bool                  `json:"from_cache"`
	TimeAvailable bool                  `json:"time_available"`
}

type tabsResp struct {
	Tabs []digest.Tab `json:"tabs"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
