package registration

import (
	"errors"

	"github.com/campusgate/uniportal/services/registration"
	"github.com/campusgate/uniportal/utils/middleware"
	"github.com/campusgate/uniportal/utils/response"
	"github.com/gofiber/fiber/v2"
)

// RegistrationHandler exposes the student course-registration endpoints
type RegistrationHandler struct {
	service *registration.Service
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(service *registration.Service) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// GetView handles GET /api/v1/students/course-registration. It returns the
// courses open to the authenticated student under the active session and
// semester, plus their current registrations.
func (h *RegistrationHandler) GetView(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	view, err := h.service.GetView(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, registration.ErrStudentNotFound),
			errors.Is(err, registration.ErrNoActiveProgramme):
			return response.NotFound(c, err.Error())
		default:
			return response.Internal(c, err)
		}
	}

	return response.Success(c, view)
}

// SubmitRequest carries the full course selection for the active session.
// CourseIDs is a pointer so an absent key can be told apart from an
// explicit empty list: only the latter clears the registration set.
type SubmitRequest struct {
	CourseIDs *[]uint `json:"courseIds"`
}

// Submit handles POST /api/v1/students/course-registration. The submitted
// selection replaces the student's registration set for the active session
// wholesale; an empty list clears it.
func (h *RegistrationHandler) Submit(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil || req.CourseIDs == nil {
		return response.BadRequest(c, "courseIds must be an array of course ids")
	}

	if err := h.service.Submit(c.Context(), userID, *req.CourseIDs); err != nil {
		switch {
		case errors.Is(err, registration.ErrStudentNotFound),
			errors.Is(err, registration.ErrCourseNotFound):
			return response.NotFound(c, err.Error())
		default:
			return response.Internal(c, err)
		}
	}

	return response.SuccessWithMessage(c, "Course registration saved", nil)
}
