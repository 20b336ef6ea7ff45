package program

import (
	"errors"
	"strconv"

	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/utils/response"
	"github.com/campusgate/uniportal/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProgramHandler handles programme administration
type ProgramHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewProgramHandler creates a new program handler
func NewProgramHandler(db *gorm.DB) *ProgramHandler {
	return &ProgramHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateProgramRequest represents the request body for creating a programme
type CreateProgramRequest struct {
	Name              string `json:"name" validate:"required,min=3,max=255"`
	Code              string `json:"code" validate:"required,min=2,max=30"`
	Level             string `json:"level" validate:"required,max=50"`
	Department        string `json:"department" validate:"omitempty,max=100"`
	DurationSemesters int    `json:"duration_semesters" validate:"required,min=1,max=16"`
}

// UpdateProgramRequest represents the request body for updating a programme
type UpdateProgramRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=3,max=255"`
	Level             *string `json:"level" validate:"omitempty,max=50"`
	Department        *string `json:"department" validate:"omitempty,max=100"`
	DurationSemesters *int    `json:"duration_semesters" validate:"omitempty,min=1,max=16"`
	IsActive          *bool   `json:"is_active"`
}

// ListPrograms handles GET /api/v1/programs
func (h *ProgramHandler) ListPrograms(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	search := c.Query("search", "")

	query := h.db.Model(&model.Program{})
	if search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count programs")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var programs []model.Program
	if err := query.Order("name ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&programs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch programs")
	}

	return response.Paginated(c, programs, pagination)
}

// GetProgram handles GET /api/v1/programs/:id
func (h *ProgramHandler) GetProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var program model.Program
	if err := h.db.Preload("Courses").First(&program, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Program not found")
		}
		return response.Internal(c, err)
	}

	return response.Success(c, program)
}

// CreateProgram handles POST /api/v1/programs
func (h *ProgramHandler) CreateProgram(c *fiber.Ctx) error {
	var req CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	program := model.Program{
		Name:              req.Name,
		Code:              req.Code,
		Level:             req.Level,
		Department:        req.Department,
		DurationSemesters: req.DurationSemesters,
		IsActive:          true,
	}
	if err := h.db.Create(&program).Error; err != nil {
		return response.Internal(c, err)
	}

	return response.Created(c, program)
}

// UpdateProgram handles PUT /api/v1/programs/:id
func (h *ProgramHandler) UpdateProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var program model.Program
	if err := h.db.First(&program, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Program not found")
		}
		return response.Internal(c, err)
	}

	var req UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Name != nil {
		program.Name = *req.Name
	}
	if req.Level != nil {
		program.Level = *req.Level
	}
	if req.Department != nil {
		program.Department = *req.Department
	}
	if req.DurationSemesters != nil {
		program.DurationSemesters = *req.DurationSemesters
	}
	if req.IsActive != nil {
		program.IsActive = *req.IsActive
	}

	if err := h.db.Save(&program).Error; err != nil {
		return response.Internal(c, err)
	}

	return response.Success(c, program)
}

// DeleteProgram handles DELETE /api/v1/programs/:id
func (h *ProgramHandler) DeleteProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	res := h.db.Delete(&model.Program{}, id)
	if res.Error != nil {
		return response.Internal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return response.NotFound(c, "Program not found")
	}

	return response.SuccessWithMessage(c, "Program deleted", nil)
}
