package domain

import (
	"database/sql/driver"
	"fmt"
)

// RequestStatus represents the lifecycle state of a membership request.
type RequestStatus string

// Request status constants.
const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusDenied   RequestStatus = "denied"
)

// NewRequestStatus creates a new RequestStatus with validation.
// Returns an error if the status is invalid.
func NewRequestStatus(s string) (RequestStatus, error) {
	status := RequestStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid request status: %s (must be one of: %s, %s, %s)",
			s, StatusPending, StatusApproved, StatusDenied)
	}
	return status, nil
}

// IsValid checks if the status is valid.
func (s RequestStatus) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusDenied
}

// IsResolved reports whether the request has reached a terminal state.
func (s RequestStatus) IsResolved() bool {
	return s == StatusApproved || s == StatusDenied
}

// Scan implements sql.Scanner interface for automatic validation when reading from database.
func (s *RequestStatus) Scan(value any) error {
	if value == nil {
		return fmt.Errorf("RequestStatus cannot be NULL")
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into RequestStatus", value)
	}

	status, err := NewRequestStatus(str)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Value implements driver.Valuer interface for writing to database.
func (s RequestStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid RequestStatus value: %s", s)
	}
	return string(s), nil
}
