package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-roster/internal/api/dto"
	"github.com/spec-kit/clinic-roster/internal/domain"
)

// EmployeeService is the behaviour EmployeesHandler needs.
type EmployeeService interface {
	List(ctx context.Context) ([]domain.EmployeeDetail, error)
	Get(ctx context.Context, id string) (*domain.EmployeeDetail, error)
	Create(ctx context.Context, in domain.EmployeeInput) (*domain.EmployeeDetail, error)
	Update(ctx context.Context, id string, in domain.EmployeeInput) (*domain.EmployeeDetail, error)
	Delete(ctx context.Context, id string) error
}

// EmployeesHandler exposes employee endpoints.
type EmployeesHandler struct {
	service EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(service EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: service}
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	emps, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		resp = append(resp, employeeResponse(&emps[i]))
	}
	return c.JSON(resp)
}

// Get handles GET /api/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	emp, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	emp, err := h.service.Create(c.UserContext(), employeeInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(employeeResponse(emp))
}

// Update handles PUT /api/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	emp, err := h.service.Update(c.UserContext(), c.Params("id"), employeeInput(req))
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Employee deleted"})
}

func employeeInput(req dto.EmployeeRequest) domain.EmployeeInput {
	return domain.EmployeeInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		DepartmentID: req.Department,
		HireDate:     req.HireDate.Ptr(),
		IsActive:     req.IsActive,
	}
}

func employeeResponse(emp *domain.EmployeeDetail) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:        emp.ID,
		FirstName: emp.FirstName,
		LastName:  emp.LastName,
		Email:     emp.Email,
		Phone:     emp.Phone,
		Role:      emp.Role,
		HireDate:  emp.HireDate,
		IsActive:  emp.IsActive,
		CreatedAt: emp.CreatedAt,
		UpdatedAt: emp.UpdatedAt,
	}
	if emp.Department != nil {
		resp.Department = &dto.DepartmentRef{ID: emp.Department.ID, Name: emp.Department.Name}
	}
	return resp
}
