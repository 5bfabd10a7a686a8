package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/complaint-service/internal/auth"
	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/events"
	"github.com/spec-kit/complaint-service/internal/repository"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// ComplaintService enforces role-based visibility and mutation rules.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	dispatcher events.Dispatcher
}

// ComplaintDependencies bundles requirements for the complaint service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	Dispatcher    events.Dispatcher
}

// ComplaintCreateInput describes a submission payload. Owner and status are
// not part of it on purpose: both are set server-side.
type ComplaintCreateInput struct {
	Name        string
	Category    string
	Description string
	Priority    string
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Submit persists a complaint owned by the caller with status Pending. Any
// authenticated identity may submit; the reference never restricted this to
// students.
func (s *ComplaintService) Submit(ctx context.Context, principal *auth.Principal, input ComplaintCreateInput) (*domain.Complaint, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	input.Description = strings.TrimSpace(input.Description)
	input.Priority = strings.TrimSpace(input.Priority)

	if input.Name == "" || input.Category == "" || input.Description == "" || input.Priority == "" {
		return nil, apperrors.NewValidationError("name, category, description, priority required", nil)
	}

	complaint := &domain.Complaint{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      domain.ComplaintStatusPending,
		UserID:      principal.UserID,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ID,
		Actor:       events.Actor{UserID: principal.UserID, Role: principal.Role},
		Payload: events.ComplaintCreatedPayload{
			Category: complaint.Category,
			Priority: complaint.Priority,
			Status:   complaint.Status,
		},
	})
	return complaint, nil
}

// List applies the role policy: admins see every complaint and may filter by
// status ("All" disables the filter); everyone else sees exactly their own
// complaints and the status parameter is ignored. Results are newest-first.
func (s *ComplaintService) List(ctx context.Context, principal *auth.Principal, status string) ([]domain.Complaint, error) {
	filter := repository.ComplaintFilter{}
	if principal.IsAdmin() {
		if status != "" && status != domain.StatusFilterAll {
			filter.Status = &status
		}
	} else {
		userID := principal.UserID
		filter.UserID = &userID
	}
	return s.complaints.List(ctx, filter)
}

// UpdateStatus stores the given status on the addressed complaint. Admin
// only. The status string is stored verbatim and a missing id still succeeds,
// matching the reference.
func (s *ComplaintService) UpdateStatus(ctx context.Context, principal *auth.Principal, complaintID, status string) error {
	if !principal.IsAdmin() {
		return apperrors.NewForbidden("Access denied")
	}

	if err := s.complaints.UpdateStatus(ctx, complaintID, status); err != nil {
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintStatusChanged,
		ComplaintID: complaintID,
		Actor:       events.Actor{UserID: principal.UserID, Role: principal.Role},
		Payload:     events.ComplaintStatusChangedPayload{NewStatus: status},
	})
	return nil
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
