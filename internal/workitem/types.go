package workitem

// WriteStatus is the outcome of a persistent-tier write.
type WriteStatus string

const (
	WriteWritten WriteStatus = "written"
	WriteSkipped WriteStatus = "skipped"
)

// WriteResult reports whether a snapshot reached durable storage. Callers may ignore it.
type WriteResult struct {
	Status WriteStatus
	Reason string
}

// Written reports a successful write.
func Written() WriteResult { return WriteResult{Status: WriteWritten} }

// Skipped reports a write that was dropped and why.
func Skipped(reason string) WriteResult { return WriteResult{Status: WriteSkipped, Reason: reason} }
