package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/dto"
	"github.com/spec-kit/complaint-service/internal/auth"
	"github.com/spec-kit/complaint-service/internal/service"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// ComplaintsHandler manages complaint endpoints.
type ComplaintsHandler struct {
	service  *service.ComplaintService
	validate *validator.Validate
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService, validate *validator.Validate) *ComplaintsHandler {
	return &ComplaintsHandler{service: complaintService, validate: validate}
}

// Create handles POST /api/complaints.
func (h *ComplaintsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("name, category, description, priority required", nil)
	}

	input := service.ComplaintCreateInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Priority:    req.Priority,
	}
	if _, err := h.service.Submit(c.Context(), principal, input); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Complaint Submitted"})
}

// List handles GET /api/complaints with an optional status query.
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	complaints, err := h.service.List(c.Context(), principal, c.Query("status"))
	if err != nil {
		return err
	}

	items := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, dto.NewComplaintResponse(&complaints[i]))
	}
	return c.JSON(items)
}

// UpdateStatus handles PUT /api/complaints/:id. Admin only, enforced by route
// middleware and rechecked in the service.
func (h *ComplaintsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("status required", nil)
	}

	if err := h.service.UpdateStatus(c.Context(), principal, c.Params("id"), req.Status); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Status Updated"})
}
