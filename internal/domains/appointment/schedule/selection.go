package schedule

// Selection is a single-slot pick on a day's grid. Re-picking the selected
// slot clears it, so the selection holds at most one label.
type Selection struct {
	label string
}

// Toggle selects the slot, or clears the selection when the slot is already
// the current pick.
func (s *Selection) Toggle(label string) {
	if s.label == label {
		s.label = ""
		return
	}

	s.label = label
}

// Clear drops the current pick. Call it whenever the viewed day, category or
// the underlying grid changes, so a stale pick can never be submitted.
func (s *Selection) Clear() {
	s.label = ""
}

func (s *Selection) Label() string {
	return s.label
}

func (s *Selection) IsEmpty() bool {
	return s.label == ""
}
