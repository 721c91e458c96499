package order

// IsAbnormal classifies a shipping-status change. It is pure and total over the
// six-status vocabulary; abnormal changes are still allowed, they only raise a warning.
//
// Rules, evaluated in order:
//  1. moving to out_of_stock is normal
//  2. leaving out_of_stock is normal
//  3. leaving completed is abnormal
//  4. shipped back to pending, preparing or processing is abnormal
//  5. otherwise abnormal iff the new rank is lower than the old rank
func IsAbnormal(from, to Status) bool {
	switch {
	case to == OutOfStock:
		return false
	case from == OutOfStock:
		return false
	case from == Completed && to != Completed:
		return true
	case from == Shipped && (to == Pending || to == Preparing || to == Processing):
		return true
	default:
		return to.Rank() < from.Rank()
	}
}

// Transition describes one candidate target status.
type Transition struct {
	Status     Status
	IsAbnormal bool
}

// AvailableTransitions lists every other status in rank order, annotated with
// whether choosing it would be abnormal.
func AvailableTransitions(current Status) []Transition {
	transitions := make([]Transition, 0, len(statusTable)-1)
	for _, s := range Statuses() {
		if s == current {
			continue
		}
		transitions = append(transitions, Transition{
			Status:     s,
			IsAbnormal: IsAbnormal(current, s),
		})
	}
	return transitions
}
