package valueobjects

import "fmt"

// Status is the lifecycle state of a ticket. The set is closed and enforced
// server-side; transitions between any two members are allowed.
type Status string

const (
	StatusStart      Status = "Start"
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusUrgent     Status = "Urgent"
	StatusCompleted  Status = "Completed"
)

var validStatuses = map[Status]bool{
	StatusStart:      true,
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusUrgent:     true,
	StatusCompleted:  true,
}

// DefaultStatus is the status assigned to newly created tickets.
const DefaultStatus = StatusStart

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}

// AllStatuses returns the closed status set.
func AllStatuses() []Status {
	return []Status{
		StatusStart,
		StatusPending,
		StatusInProgress,
		StatusResolved,
		StatusUrgent,
		StatusCompleted,
	}
}
