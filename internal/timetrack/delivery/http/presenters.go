package http

import (
	"task-digest/internal/model"
	"task-digest/internal/timetrack"
)

type setAPIKeyReq struct {
	APIKey string `json:"api_key"`
}

type rangeReq struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (r rangeReq) toInput() timetrack.ListInput {
	return timetrack.ListInput{From: r.From, To: r.To}
}

type apiKeyResp struct {
	Configured bool `json:"configured"`
}

type entriesResp struct {
	Entries []model.TimeEntry `json:"entries"`
	Count   int               `json:"count"`
}

type summaryResp struct {
	Tasks        []model.TaskTimeSummary `json:"tasks"`
	TotalSeconds int64                   `json:"total_seconds"`
}

func newSummaryResp(summaries []model.TaskTimeSummary) summaryResp {
	var total int64
	for _, s := range summaries {
		total += s.TotalSeconds
	}
	return summaryResp{Tasks: summaries, TotalSeconds: total}
}
