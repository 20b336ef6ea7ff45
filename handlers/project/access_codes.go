package project

import (
	"strings"
	"time"

	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/utils/response"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateAccessCodeRequest represents the request body for issuing a code
type CreateAccessCodeRequest struct {
	Label     string     `json:"label" validate:"omitempty,max=100"`
	MaxUses   int        `json:"max_uses" validate:"min=0"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// CreateAccessCode handles POST /api/v1/access-codes (admin). The code
// value is generated server-side.
func (h *ProjectHandler) CreateAccessCode(c *fiber.Ctx) error {
	var req CreateAccessCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	code := model.AccessCode{
		Code:      generateCode(),
		Label:     req.Label,
		MaxUses:   req.MaxUses,
		ExpiresAt: req.ExpiresAt,
		IsActive:  true,
	}
	if err := h.db.Create(&code).Error; err != nil {
		return response.Internal(c, err)
	}

	return response.Created(c, code)
}

// ListAccessCodes handles GET /api/v1/access-codes (admin)
func (h *ProjectHandler) ListAccessCodes(c *fiber.Ctx) error {
	var codes []model.AccessCode
	if err := h.db.Order("created_at DESC").Find(&codes).Error; err != nil {
		return response.Internal(c, err)
	}
	return response.Success(c, codes)
}

// DeactivateAccessCode handles DELETE /api/v1/access-codes/:id (admin)
func (h *ProjectHandler) DeactivateAccessCode(c *fiber.Ctx) error {
	res := h.db.Model(&model.AccessCode{}).
		Where("id = ?", c.Params("id")).
		Update("is_active", false)
	if res.Error != nil {
		return response.Internal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return response.NotFound(c, "Access code not found")
	}
	return response.SuccessWithMessage(c, "Access code deactivated", nil)
}

// generateCode produces a short uppercase code, e.g. "4F7A-9C2B".
func generateCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return raw[:4] + "-" + raw[4:8]
}
