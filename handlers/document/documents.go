package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/utils/middleware"
	"github.com/campusgate/uniportal/utils/pdfvalidation"
	"github.com/campusgate/uniportal/utils/response"
	"github.com/campusgate/uniportal/utils/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentHandler handles shared document upload and distribution
type DocumentHandler struct {
	db     *gorm.DB
	spaces *storage.SpacesClient
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(db *gorm.DB, spaces *storage.SpacesClient) *DocumentHandler {
	return &DocumentHandler{db: db, spaces: spaces}
}

// Upload handles POST /api/v1/documents (staff). Multipart form with a
// "file" part plus title/description/visibility fields.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "A file is required")
	}

	title := c.FormValue("title")
	if title == "" {
		title = file.Filename
	}
	visibility := c.FormValue("visibility", model.DocumentVisibilityStudents)
	switch visibility {
	case model.DocumentVisibilityPublic, model.DocumentVisibilityStudents, model.DocumentVisibilityStaff:
	default:
		return response.BadRequest(c, "Invalid visibility")
	}

	// Only PDFs are accepted for shared documents.
	result, err := pdfvalidation.ValidateFile(file, pdfvalidation.DocumentLimits)
	if err != nil {
		return response.Internal(c, err)
	}
	if !result.Valid {
		return response.BadRequest(c, result.Error)
	}

	key := fmt.Sprintf("documents/%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	src, err := file.Open()
	if err != nil {
		return response.Internal(c, err)
	}
	defer src.Close()

	if err := h.spaces.Upload(c.Context(), key, src, "application/pdf"); err != nil {
		return response.Internal(c, err)
	}

	doc := model.Document{
		Title:        title,
		Description:  c.FormValue("description"),
		FileKey:      key,
		FileName:     file.Filename,
		ContentType:  "application/pdf",
		SizeBytes:    file.Size,
		Visibility:   visibility,
		UploadedByID: user.ID,
	}
	if err := h.db.Create(&doc).Error; err != nil {
		return response.Internal(c, err)
	}

	return response.Created(c, doc)
}

// List handles GET /api/v1/documents, filtered by the caller's role
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	query := h.db.Model(&model.Document{}).
		Where("visibility IN ?", visibleTo(user.Role))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count documents")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var docs []model.Document
	if err := query.Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&docs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch documents")
	}

	return response.Paginated(c, docs, pagination)
}

// Download handles GET /api/v1/documents/:id/download, returning a
// short-lived URL.
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var doc model.Document
	if err := h.db.First(&doc, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Document not found")
		}
		return response.Internal(c, err)
	}

	if !contains(visibleTo(user.Role), doc.Visibility) {
		return response.Forbidden(c, "You do not have access to this document")
	}

	url, err := h.spaces.PresignedURL(doc.FileKey, 15*time.Minute)
	if err != nil {
		return response.Internal(c, err)
	}

	return response.Success(c, fiber.Map{"url": url})
}

// Delete handles DELETE /api/v1/documents/:id (staff)
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	var doc model.Document
	if err := h.db.First(&doc, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Document not found")
		}
		return response.Internal(c, err)
	}

	if err := h.spaces.Delete(c.Context(), doc.FileKey); err != nil {
		return response.Internal(c, err)
	}
	if err := h.db.Delete(&doc).Error; err != nil {
		return response.Internal(c, err)
	}

	return response.SuccessWithMessage(c, "Document deleted", nil)
}

// visibleTo maps a role onto the visibility levels it may read
func visibleTo(role string) []string {
	switch role {
	case model.RoleAdmin, model.RoleLecturer:
		return []string{model.DocumentVisibilityPublic, model.DocumentVisibilityStudents, model.DocumentVisibilityStaff}
	case model.RoleStudent:
		return []string{model.DocumentVisibilityPublic, model.DocumentVisibilityStudents}
	default:
		return []string{model.DocumentVisibilityPublic}
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
