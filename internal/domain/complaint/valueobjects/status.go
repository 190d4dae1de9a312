package valueobjects

import "fmt"

type Status string

const (
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

var validStatuses = map[Status]bool{
	StatusAssigned:   true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

var statusTransitions = map[Status][]Status{
	StatusAssigned: {
		StatusInProgress,
		StatusCompleted,
	},
	StatusInProgress: {
		StatusCompleted,
		StatusAssigned,
	},
	StatusCompleted: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsAssigned() bool {
	return s == StatusAssigned
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusAssigned,
		StatusInProgress,
		StatusCompleted,
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid complaint status: %s", s)
	}
	return st, nil
}
