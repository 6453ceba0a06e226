package timetrack

// ListInput bounds a listing by inclusive YYYY-MM-DD dates. Empty bounds are open.
type ListInput struct {
	From string
	To   string
}
