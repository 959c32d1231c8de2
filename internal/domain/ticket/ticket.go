package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

const maxDescriptionLength = 5000

// Ticket is a single IT service request tracked through a status lifecycle.
// The code is the human-facing, year-scoped identifier (INC-YYYY-NNNN).
type Ticket struct {
	id          uint
	code        string
	userID      uint
	requestType vo.RequestType
	softwareID  *uint
	description string
	status      vo.Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	userID uint,
	requestType vo.RequestType,
	softwareID *uint,
	description string,
) (*Ticket, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(requestType) == 0 {
		return nil, fmt.Errorf("request type is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if softwareID != nil && *softwareID == 0 {
		return nil, fmt.Errorf("software ID cannot be zero")
	}

	now := time.Now()

	return &Ticket{
		userID:      userID,
		requestType: requestType,
		softwareID:  softwareID,
		description: description,
		status:      vo.DefaultStatus,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	code string,
	userID uint,
	requestType vo.RequestType,
	softwareID *uint,
	description string,
	status vo.Status,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("ticket code is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:          id,
		code:        code,
		userID:      userID,
		requestType: requestType,
		softwareID:  softwareID,
		description: description,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Code() string {
	return t.code
}

func (t *Ticket) UserID() uint {
	return t.userID
}

func (t *Ticket) RequestType() vo.RequestType {
	return t.requestType
}

func (t *Ticket) SoftwareID() *uint {
	return t.softwareID
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetCode(code string) error {
	if len(t.code) > 0 {
		return fmt.Errorf("ticket code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("ticket code cannot be empty")
	}
	t.code = code
	return nil
}

// ChangeStatus moves the ticket to newStatus. Any member of the closed set
// may follow any other; there is no terminal state, so completed tickets can
// be reopened.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	return nil
}

// GetOwnerID exposes the owning user for authorization checks.
func (t *Ticket) GetOwnerID() uint {
	return t.userID
}
