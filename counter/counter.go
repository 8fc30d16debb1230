package counter

// Counter is a cumulative metric
type Counter interface {
	// Value returns the total added so far.
	Value() int64
	// RatePerSec returns the increase per second over the last period.
	RatePerSec() int64

	Add(delta int64)
}
