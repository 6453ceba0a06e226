package digest

import "context"

// UseCase builds display-ready task lists from the work-item engine, annotated with
// tracked time.
type UseCase interface {
	// Critical lists open items that have gone stale, and recent-ish ones that already
	// consumed more than the attention threshold of tracked time.
	Critical(ctx context.Context, in CriticalInput) (CriticalOutput, error)
	// WaitingFor lists the caller's items whose title marks them as blocked on someone else.
	WaitingFor(ctx context.Context) (WaitingOutput, error)
	// Focused lists the caller's items of one focus tab, grouped by project.
	Focused(ctx context.Context, in FocusedInput) (FocusedOutput, error)
	// Tabs returns the configured focus tabs followed by the catch-all tab.
	Tabs() []Tab
}
