package orchestrator

// Excess returns how many of the oldest artifacts must be purged to bring a
// tier back within its retention maximum. A tier at or under its maximum has
// no excess and rotation is a no-op.
func Excess(count, maxAllowed int) int {
	if count <= maxAllowed {
		return 0
	}
	return count - maxAllowed
}
