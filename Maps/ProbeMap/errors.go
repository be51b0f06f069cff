package ProbeMap

import "fmt"

// InvalidCapacityError is returned when a table is constructed with a non-positive capacity.
type InvalidCapacityError struct {
	Capacity int
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("invalid capacity %d: must be positive", e.Capacity)
}

// CapacityExceededError is returned by Put when a new key doesn't fit.
type CapacityExceededError struct {
	Key      string
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("cannot put %q: table of capacity %d is full", e.Key, e.Capacity)
}
