package http

import "task-digest/internal/digest"

func (r criticalReq) toInput() digest.CriticalInput {
	return digest.CriticalInput{Assignee: r.Assignee}
}

func (r focusedReq) toInput() digest.FocusedInput {
	return digest.FocusedInput{TabID: r.Tab}
}
