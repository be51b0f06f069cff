package Maps

import "golang.org/x/exp/constraints"

// Wrap advances i by d positions on a ring of n slots. i must be in [0,n).
func Wrap[T constraints.Integer](i, d, n T) T {
	return (i + d) % n
}
