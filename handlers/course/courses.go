package course

import (
	"errors"
	"strconv"

	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/services/programtype"
	"github.com/campusgate/uniportal/utils/response"
	"github.com/campusgate/uniportal/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CourseHandler handles course catalog administration
type CourseHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateCourseRequest represents the request body for creating a course.
// Semester and ProgramType stay nil to mark the course as applying to every
// semester or every programme type.
type CreateCourseRequest struct {
	ProgramID    uint    `json:"program_id" validate:"required,min=1"`
	Title        string  `json:"title" validate:"required,min=3,max=255"`
	Code         string  `json:"code" validate:"required,min=2,max=30"`
	Semester     *string `json:"semester" validate:"omitempty,oneof=First Second"`
	ProgramType  *string `json:"program_type" validate:"omitempty,max=50"`
	CreditHours  int     `json:"credit_hours" validate:"required,min=1,max=12"`
	DisplayOrder int     `json:"display_order" validate:"min=0"`
}

// UpdateCourseRequest represents the request body for updating a course
type UpdateCourseRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=3,max=255"`
	Code         *string `json:"code" validate:"omitempty,min=2,max=30"`
	Semester     *string `json:"semester" validate:"omitempty,oneof=First Second"`
	ProgramType  *string `json:"program_type" validate:"omitempty,max=50"`
	CreditHours  *int    `json:"credit_hours" validate:"omitempty,min=1,max=12"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,min=0"`
}

// ListCourses handles GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	search := c.Query("search", "")
	programID := c.Query("program_id", "")

	query := h.db.Model(&model.Course{})

	if search != "" {
		query = query.Where("title ILIKE ? OR code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if programID != "" {
		query = query.Where("program_id = ?", programID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count courses")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var courses []model.Course
	if err := query.Preload("Program").
		Order("display_order ASC, id ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&courses).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch courses")
	}

	return response.Paginated(c, courses, pagination)
}

// GetCourse handles GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var course model.Course
	if err := h.db.Preload("Program").First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Course not found")
		}
		return response.Internal(c, err)
	}

	return response.Success(c, course)
}

// CreateCourse handles POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var program model.Program
	if err := h.db.First(&program, req.ProgramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Program not found")
		}
		return response.Internal(c, err)
	}

	course := model.Course{
		ProgramID:    req.ProgramID,
		Title:        req.Title,
		Code:         req.Code,
		Semester:     req.Semester,
		ProgramType:  normalizeType(req.ProgramType),
		CreditHours:  req.CreditHours,
		IsActive:     true,
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.db.Create(&course).Error; err != nil {
		return response.Internal(c, err)
	}

	return response.Created(c, course)
}

// UpdateCourse handles PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Course not found")
		}
		return response.Internal(c, err)
	}

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Code != nil {
		course.Code = *req.Code
	}
	if req.Semester != nil {
		course.Semester = req.Semester
	}
	if req.ProgramType != nil {
		course.ProgramType = normalizeType(req.ProgramType)
	}
	if req.CreditHours != nil {
		course.CreditHours = *req.CreditHours
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		course.DisplayOrder = *req.DisplayOrder
	}

	if err := h.db.Save(&course).Error; err != nil {
		return response.Internal(c, err)
	}

	return response.Success(c, course)
}

// DeleteCourse handles DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	res := h.db.Delete(&model.Course{}, id)
	if res.Error != nil {
		return response.Internal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return response.NotFound(c, "Course not found")
	}

	return response.SuccessWithMessage(c, "Course deleted", nil)
}

// normalizeType canonicalizes the programme type once at data entry. Legacy
// rows keep their historical spellings; the registration read path carries a
// variant shim for those.
func normalizeType(raw *string) *string {
	if raw == nil || *raw == "" {
		return nil
	}
	normalized := programtype.Normalize(*raw)
	return &normalized
}
