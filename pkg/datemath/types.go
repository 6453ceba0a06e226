package datemath

const (
	// DateFormat is the calendar-date layout used by the time-tracking API.
	DateFormat = "2006-01-02"

	// FarFutureYear anchors FarFuture. Kept stable so the cache key for the
	// "all items" listing stays the same across days.
	FarFutureYear = 2100
)
