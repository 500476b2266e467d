package domain

// RoutineItem is one scheduled activity of a generated daily routine.
type RoutineItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Duration string `json:"duration"`
	Category string `json:"category"`
}

// CloneRoutine returns a copy of items. A nil input yields an empty, non-nil slice.
func CloneRoutine(items []RoutineItem) []RoutineItem {
	out := make([]RoutineItem, len(items))
	copy(out, items)
	return out
}
