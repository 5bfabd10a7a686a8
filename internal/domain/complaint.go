package domain

import "time"

// ComplaintStatus enumerates lifecycle stages for complaints. The stored status
// field is not constrained to these values: admins may write arbitrary strings
// and the store keeps them verbatim.
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "Pending"
	ComplaintStatusInProgress ComplaintStatus = "In Progress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
)

// StatusFilterAll is the sentinel query value that disables status filtering.
const StatusFilterAll = "All"

// Complaint is the aggregate for student-submitted complaints. UserID is set
// once from the authenticated submitter and never from client data.
type Complaint struct {
	ID          string
	Name        string
	Category    string
	Description string
	Priority    string
	Status      ComplaintStatus
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
