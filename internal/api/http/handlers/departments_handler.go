package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-roster/internal/api/dto"
	"github.com/spec-kit/clinic-roster/internal/domain"
	apperrors "github.com/spec-kit/clinic-roster/pkg/util/errorutil"
)

// DepartmentService is the behaviour DepartmentsHandler needs.
type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Get(ctx context.Context, id string) (*domain.Department, error)
	Create(ctx context.Context, in domain.DepartmentInput) (*domain.Department, error)
	Update(ctx context.Context, id string, in domain.DepartmentInput) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
}

// DepartmentsHandler exposes department endpoints.
type DepartmentsHandler struct {
	service DepartmentService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(service DepartmentService) *DepartmentsHandler {
	return &DepartmentsHandler{service: service}
}

// List handles GET /api/departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	depts, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		resp = append(resp, departmentResponse(&depts[i]))
	}
	return c.JSON(resp)
}

// Get handles GET /api/departments/:id.
func (h *DepartmentsHandler) Get(c *fiber.Ctx) error {
	dept, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(departmentResponse(dept))
}

// Create handles POST /api/departments.
func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	dept, err := h.service.Create(c.UserContext(), departmentInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(departmentResponse(dept))
}

// Update handles PUT /api/departments/:id.
func (h *DepartmentsHandler) Update(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	dept, err := h.service.Update(c.UserContext(), c.Params("id"), departmentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(departmentResponse(dept))
}

// Delete handles DELETE /api/departments/:id.
func (h *DepartmentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Department deleted"})
}

func invalidPayload() error {
	return apperrors.NewValidationError("invalid request payload")
}

func departmentInput(req dto.DepartmentRequest) domain.DepartmentInput {
	return domain.DepartmentInput{Name: req.Name, Description: req.Description}
}

func departmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
		CreatedAt:   dept.CreatedAt,
		UpdatedAt:   dept.UpdatedAt,
	}
}
