package software

import (
	"fmt"
	"strings"
)

// Entry is one row of the software catalog tickets may reference. Entries
// are created by admin CSV upload or seed and never cascade-deleted from
// tickets.
type Entry struct {
	id      uint
	name    string
	version string
}

func NewEntry(name, version string) (*Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("software name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("software name exceeds maximum length of 100 characters")
	}
	if len(version) > 50 {
		return nil, fmt.Errorf("software version exceeds maximum length of 50 characters")
	}

	return &Entry{
		name:    name,
		version: strings.TrimSpace(version),
	}, nil
}

func ReconstructEntry(id uint, name, version string) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("software ID cannot be zero")
	}

	return &Entry{
		id:      id,
		name:    name,
		version: version,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) Name() string {
	return e.name
}

func (e *Entry) Version() string {
	return e.version
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("software ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("software ID cannot be zero")
	}
	e.id = id
	return nil
}
