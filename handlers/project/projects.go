package project

import (
	"errors"
	"strconv"
	"time"

	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/services/accesscode"
	"github.com/campusgate/uniportal/utils/response"
	"github.com/campusgate/uniportal/utils/storage"
	"github.com/campusgate/uniportal/utils/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ProjectHandler serves the access-code gated project archive
type ProjectHandler struct {
	db        *gorm.DB
	codes     *accesscode.Service
	spaces    *storage.SpacesClient
	validator *validation.Validator
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(db *gorm.DB, codes *accesscode.Service, spaces *storage.SpacesClient) *ProjectHandler {
	return &ProjectHandler{
		db:        db,
		codes:     codes,
		spaces:    spaces,
		validator: validation.NewValidator(),
	}
}

// VerifyCodeRequest carries the access code for redemption
type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required,min=4,max=40"`
}

// VerifyCode handles POST /api/v1/projects/verify-code. A successful
// verification consumes one use of the code.
func (h *ProjectHandler) VerifyCode(c *fiber.Ctx) error {
	var req VerifyCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	code, err := h.codes.Redeem(c.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, accesscode.ErrCodeNotFound):
			return response.NotFound(c, err.Error())
		case errors.Is(err, accesscode.ErrCodeInactive),
			errors.Is(err, accesscode.ErrCodeExpired),
			errors.Is(err, accesscode.ErrCodeExhausted):
			return response.Forbidden(c, err.Error())
		default:
			return response.Internal(c, err)
		}
	}

	return response.SuccessWithMessage(c, "Access code accepted", fiber.Map{
		"label": code.Label,
	})
}

// ListProjects handles GET /api/v1/projects. The X-Access-Code header must
// carry a currently valid code; listing does not consume a use.
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	codeHeader := c.Get("X-Access-Code")
	if codeHeader == "" {
		return response.Unauthorized(c, "An access code is required to browse projects")
	}
	if _, err := h.codes.Validate(c.Context(), codeHeader); err != nil {
		return response.Forbidden(c, "Access code is not valid")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	search := c.Query("search", "")
	year := c.Query("year", "")

	query := h.db.Model(&model.Project{})
	if search != "" {
		query = query.Where("title ILIKE ? OR abstract ILIKE ? OR author ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if year != "" {
		query = query.Where("year = ?", year)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count projects")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var projects []model.Project
	if err := query.Preload("Program").
		Order("year DESC, title ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&projects).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch projects")
	}

	return response.Paginated(c, projects, pagination)
}

// DownloadProject handles GET /api/v1/projects/:id/download, returning a
// short-lived URL for the project file.
func (h *ProjectHandler) DownloadProject(c *fiber.Ctx) error {
	codeHeader := c.Get("X-Access-Code")
	if codeHeader == "" {
		return response.Unauthorized(c, "An access code is required to download projects")
	}
	if _, err := h.codes.Validate(c.Context(), codeHeader); err != nil {
		return response.Forbidden(c, "Access code is not valid")
	}

	var project model.Project
	if err := h.db.First(&project, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Project not found")
		}
		return response.Internal(c, err)
	}
	if project.FileKey == "" {
		return response.NotFound(c, "Project has no file attached")
	}

	url, err := h.spaces.PresignedURL(project.FileKey, 15*time.Minute)
	if err != nil {
		return response.Internal(c, err)
	}

	return response.Success(c, fiber.Map{"url": url})
}

// CreateProjectRequest represents the request body for archiving a project
type CreateProjectRequest struct {
	ProgramID uint     `json:"program_id" validate:"omitempty,min=1"`
	Title     string   `json:"title" validate:"required,min=3,max=255"`
	Author    string   `json:"author" validate:"required,min=2,max=120"`
	Year      int      `json:"year" validate:"required,min=1990,max=2100"`
	Abstract  string   `json:"abstract" validate:"omitempty,max=5000"`
	Tags      []string `json:"tags" validate:"omitempty,dive,max=50"`
	FileKey   string   `json:"file_key" validate:"omitempty,max=255"`
}

// CreateProject handles POST /api/v1/projects (admin)
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	project := model.Project{
		ProgramID: req.ProgramID,
		Title:     req.Title,
		Author:    req.Author,
		Year:      req.Year,
		Abstract:  req.Abstract,
		Tags:      pq.StringArray(req.Tags),
		FileKey:   req.FileKey,
	}
	if err := h.db.Create(&project).Error; err != nil {
		return response.Internal(c, err)
	}

	return response.Created(c, project)
}

// DeleteProject handles DELETE /api/v1/projects/:id (admin)
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	res := h.db.Delete(&model.Project{}, c.Params("id"))
	if res.Error != nil {
		return response.Internal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return response.NotFound(c, "Project not found")
	}
	return response.SuccessWithMessage(c, "Project deleted", nil)
}
