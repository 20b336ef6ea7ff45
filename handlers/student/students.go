package student

import (
	"errors"
	"strconv"

	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/utils/response"
	"github.com/campusgate/uniportal/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StudentHandler handles student administration
type StudentHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// ListStudents handles GET /api/v1/students (admin)
func (h *StudentHandler) ListStudents(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	search := c.Query("search", "")

	query := h.db.Model(&model.Student{})
	if search != "" {
		query = query.Where("matric_no ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count students")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var students []model.Student
	if err := query.Preload("Programmes.Program").
		Order("last_name ASC, first_name ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&students).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch students")
	}

	return response.Paginated(c, students, pagination)
}

// GetStudent handles GET /api/v1/students/:id (admin)
func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	id := c.Params("id")

	var student model.Student
	if err := h.db.Preload("Programmes.Program").
		Preload("Applications.Program").
		First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.Internal(c, err)
	}

	return response.Success(c, student)
}

// UpdateStudentRequest represents updatable student profile fields
type UpdateStudentRequest struct {
	MatricNo  *string `json:"matric_no" validate:"omitempty,min=3,max=30"`
	FirstName *string `json:"first_name" validate:"omitempty,min=2,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=2,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
}

// UpdateStudent handles PUT /api/v1/students/:id (admin)
func (h *StudentHandler) UpdateStudent(c *fiber.Ctx) error {
	id := c.Params("id")

	var student model.Student
	if err := h.db.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.Internal(c, err)
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.MatricNo != nil {
		student.MatricNo = *req.MatricNo
	}
	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}

	if err := h.db.Save(&student).Error; err != nil {
		return response.Internal(c, err)
	}

	return response.Success(c, student)
}

// UpdateProgrammeStatusRequest changes a student programme's lifecycle status
type UpdateProgrammeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ADMITTED REGISTERED IN_PROGRESS COMPLETED WITHDRAWN"`
}

// UpdateProgrammeStatus handles PUT /api/v1/students/:id/programmes/:programmeId/status (admin)
func (h *StudentHandler) UpdateProgrammeStatus(c *fiber.Ctx) error {
	studentID := c.Params("id")
	programmeID := c.Params("programmeId")

	var req UpdateProgrammeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	res := h.db.Model(&model.StudentProgramme{}).
		Where("id = ? AND student_id = ?", programmeID, studentID).
		Update("status", req.Status)
	if res.Error != nil {
		return response.Internal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return response.NotFound(c, "Student programme not found")
	}

	return response.SuccessWithMessage(c, "Programme status updated", nil)
}
