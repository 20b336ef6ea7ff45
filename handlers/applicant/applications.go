package applicant

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/utils/middleware"
	"github.com/campusgate/uniportal/utils/response"
	"github.com/campusgate/uniportal/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ApplicationHandler handles admission applications and the admission
// exercise (scoring and admitting applicants)
type ApplicationHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(db *gorm.DB) *ApplicationHandler {
	return &ApplicationHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// ApplyRequest represents an admission application submission
type ApplyRequest struct {
	ProgramID   uint           `json:"program_id" validate:"required,min=1"`
	Session     string         `json:"session" validate:"required,max=20"`
	ProgramType string         `json:"program_type" validate:"required,max=50"`
	FirstName   string         `json:"first_name" validate:"required,min=2,max=100"`
	LastName    string         `json:"last_name" validate:"required,min=2,max=100"`
	Phone       string         `json:"phone" validate:"omitempty,max=20"`
	Metadata    datatypes.JSON `json:"metadata"`
}

// Apply handles POST /api/v1/applications. A student profile is created on
// first application so later admission only has to attach a programme.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req ApplyRequest
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

	var application model.Application
	err := h.db.Transaction(func(tx *gorm.DB) error {
		student, err := findOrCreateStudent(tx, user, req)
		if err != nil {
			return err
		}

		application = model.Application{
			StudentID:   student.ID,
			ProgramID:   req.ProgramID,
			Session:     req.Session,
			ProgramType: req.ProgramType,
			Status:      model.ApplicationStatusPending,
			Metadata:    req.Metadata,
		}
		return tx.Create(&application).Error
	})
	if err != nil {
		return response.Internal(c, err)
	}

	return response.Created(c, application)
}

// ListApplications handles GET /api/v1/applications (admin)
func (h *ApplicationHandler) ListApplications(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	status := c.Query("status", "")
	session := c.Query("session", "")

	query := h.db.Model(&model.Application{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if session != "" {
		query = query.Where("session = ?", session)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count applications")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var applications []model.Application
	if err := query.Preload("Student").Preload("Program").
		Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&applications).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch applications")
	}

	return response.Paginated(c, applications, pagination)
}

// MyApplications handles GET /api/v1/applications/mine
func (h *ApplicationHandler) MyApplications(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var student model.Student
	if err := h.db.Where("user_id = ?", user.ID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Success(c, []model.Application{})
		}
		return response.Internal(c, err)
	}

	var applications []model.Application
	if err := h.db.Preload("Program").
		Where("student_id = ?", student.ID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return response.Internal(c, err)
	}

	return response.Success(c, applications)
}

// ScoreRequest records an admission-exercise score for an application
type ScoreRequest struct {
	Score float64 `json:"score" validate:"min=0,max=100"`
}

// ScoreApplication handles POST /api/v1/applications/:id/score (admin)
func (h *ApplicationHandler) ScoreApplication(c *fiber.Ctx) error {
	id := c.Params("id")

	var application model.Application
	if err := h.db.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Application not found")
		}
		return response.Internal(c, err)
	}

	var req ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	application.Score = &req.Score
	application.Status = model.ApplicationStatusScored
	if err := h.db.Save(&application).Error; err != nil {
		return response.Internal(c, err)
	}

	return response.Success(c, application)
}

// AdmitApplication handles POST /api/v1/applications/:id/admit (admin).
// Admission creates the StudentProgramme link and upgrades the account role.
func (h *ApplicationHandler) AdmitApplication(c *fiber.Ctx) error {
	id := c.Params("id")

	var application model.Application
	if err := h.db.Preload("Student").First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Application not found")
		}
		return response.Internal(c, err)
	}

	if application.Status == model.ApplicationStatusAdmitted {
		return response.Conflict(c, "Application has already been admitted")
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		application.Status = model.ApplicationStatusAdmitted
		if err := tx.Save(&application).Error; err != nil {
			return err
		}

		programme := model.StudentProgramme{
			StudentID: application.StudentID,
			ProgramID: application.ProgramID,
			Session:   application.Session,
			Status:    model.ProgrammeStatusAdmitted,
		}
		if err := tx.Create(&programme).Error; err != nil {
			return err
		}

		return tx.Model(&model.User{}).
			Where("id = ?", application.Student.UserID).
			Update("role", model.RoleStudent).Error
	})
	if err != nil {
		return response.Internal(c, err)
	}

	return response.SuccessWithMessage(c, "Applicant admitted", application)
}

// RejectApplication handles POST /api/v1/applications/:id/reject (admin)
func (h *ApplicationHandler) RejectApplication(c *fiber.Ctx) error {
	id := c.Params("id")

	res := h.db.Model(&model.Application{}).
		Where("id = ?", id).
		Update("status", model.ApplicationStatusRejected)
	if res.Error != nil {
		return response.Internal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return response.NotFound(c, "Application not found")
	}

	return response.SuccessWithMessage(c, "Application rejected", nil)
}

func findOrCreateStudent(tx *gorm.DB, user *model.User, req ApplyRequest) (*model.Student, error) {
	var student model.Student
	err := tx.Where("user_id = ?", user.ID).First(&student).Error
	if err == nil {
		return &student, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	student = model.Student{
		UserID:    user.ID,
		MatricNo:  provisionalMatricNo(user.ID),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := tx.Create(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// provisionalMatricNo issues an applicant number; the registry replaces it
// with a real matric number at matriculation. Derived from the account id
// so concurrent applications and deleted rows cannot produce duplicates.
func provisionalMatricNo(userID uint) string {
	return fmt.Sprintf("APP/%06d", userID)
}
