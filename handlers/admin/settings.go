package admin

import (
	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/services/settings"
	"github.com/campusgate/uniportal/utils/response"
	"github.com/campusgate/uniportal/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SettingsHandler manages portal-wide system settings
type SettingsHandler struct {
	db        *gorm.DB
	settings  *settings.Service
	validator *validation.Validator
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(db *gorm.DB, svc *settings.Service) *SettingsHandler {
	return &SettingsHandler{
		db:        db,
		settings:  svc,
		validator: validation.NewValidator(),
	}
}

// ListSettings handles GET /api/v1/admin/settings
func (h *SettingsHandler) ListSettings(c *fiber.Ctx) error {
	var rows []model.SystemSetting
	if err := h.db.Order("key ASC").Find(&rows).Error; err != nil {
		return response.Internal(c, err)
	}
	return response.Success(c, rows)
}

// UpdateSettingRequest sets one setting value
type UpdateSettingRequest struct {
	Key   string `json:"key" validate:"required,min=1,max=100"`
	Value string `json:"value" validate:"required,max=1000"`
}

// UpdateSetting handles PUT /api/v1/admin/settings. The active academic
// session and semester are edited here and take effect on the next request
// since nothing caches them.
func (h *SettingsHandler) UpdateSetting(c *fiber.Ctx) error {
	var req UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.settings.Set(c.Context(), req.Key, req.Value); err != nil {
		return response.Internal(c, err)
	}

	return response.SuccessWithMessage(c, "Setting updated", fiber.Map{
		"key":   req.Key,
		"value": req.Value,
	})
}
