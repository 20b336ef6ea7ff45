package registration

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campusgate/uniportal/model"
	regsvc "github.com/campusgate/uniportal/services/registration"
	"github.com/campusgate/uniportal/services/settings"
	"github.com/gofiber/fiber/v2"
)

// stubStore backs the handler tests with a fixed student, one course and a
// mutable registration set.
type stubStore struct {
	registrations []model.StudentCourseRegistration
}

func (s *stubStore) StudentByUserID(_ context.Context, userID uint) (*model.Student, error) {
	if userID != 1 {
		return nil, regsvc.ErrStudentNotFound
	}
	return &model.Student{ID: 100, UserID: 1, FirstName: "Ada", LastName: "Obi"}, nil
}

func (s *stubStore) ActiveProgramme(_ context.Context, studentID uint) (*model.StudentProgramme, error) {
	return &model.StudentProgramme{ID: 1, StudentID: studentID, ProgramID: 10, Status: model.ProgrammeStatusAdmitted}, nil
}

func (s *stubStore) LatestApplication(_ context.Context, _, _ uint) (*model.Application, error) {
	return nil, nil
}

func (s *stubStore) ActiveCourses(_ context.Context, programID uint) ([]model.Course, error) {
	return []model.Course{{ID: 1, ProgramID: programID, Title: "Course X", IsActive: true}}, nil
}

func (s *stubStore) Registrations(_ context.Context, _ uint, _ string) ([]model.StudentCourseRegistration, error) {
	return s.registrations, nil
}

func (s *stubStore) ReplaceRegistrations(_ context.Context, studentID uint, session, _ string, courseIDs []uint) error {
	var rows []model.StudentCourseRegistration
	for _, id := range courseIDs {
		if id != 1 {
			return regsvc.ErrCourseNotFound
		}
		rows = append(rows, model.StudentCourseRegistration{StudentID: studentID, Session: session, CourseID: id})
	}
	s.registrations = rows
	return nil
}

func newSubmitApp(store *stubStore) *fiber.App {
	provider := settings.Static{
		model.SettingActiveSession:  "2025/2026",
		model.SettingActiveSemester: "First",
	}
	handler := NewRegistrationHandler(regsvc.NewService(store, provider))

	app := fiber.New()
	app.Post("/api/v1/students/course-registration", func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(1))
		return c.Next()
	}, handler.Submit)
	return app
}

func postSubmit(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/students/course-registration", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

// A body without the courseIds key must be rejected, not treated as an
// empty selection: an accidental {} POST must never wipe registrations.
func TestSubmitRejectsMissingCourseIDs(t *testing.T) {
	store := &stubStore{registrations: []model.StudentCourseRegistration{
		{StudentID: 100, Session: "2025/2026", CourseID: 1},
	}}
	app := newSubmitApp(store)

	if status := postSubmit(t, app, `{}`); status != fiber.StatusBadRequest {
		t.Errorf("status for {} = %d, want 400", status)
	}
	if len(store.registrations) != 1 {
		t.Fatalf("registrations after rejected submit = %+v, want untouched", store.registrations)
	}
}

func TestSubmitRejectsNonArrayCourseIDs(t *testing.T) {
	app := newSubmitApp(&stubStore{})

	for _, body := range []string{`{"courseIds":"1"}`, `{"courseIds":1}`, `not json`} {
		if status := postSubmit(t, app, body); status != fiber.StatusBadRequest {
			t.Errorf("status for %s = %d, want 400", body, status)
		}
	}
}

// An explicit empty list still clears the registration set.
func TestSubmitExplicitEmptyListClears(t *testing.T) {
	store := &stubStore{registrations: []model.StudentCourseRegistration{
		{StudentID: 100, Session: "2025/2026", CourseID: 1},
	}}
	app := newSubmitApp(store)

	if status := postSubmit(t, app, `{"courseIds":[]}`); status != fiber.StatusOK {
		t.Errorf("status for empty list = %d, want 200", status)
	}
	if len(store.registrations) != 0 {
		t.Fatalf("registrations = %+v, want cleared", store.registrations)
	}
}

func TestSubmitValidSelection(t *testing.T) {
	store := &stubStore{}
	app := newSubmitApp(store)

	if status := postSubmit(t, app, `{"courseIds":[1]}`); status != fiber.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if len(store.registrations) != 1 || store.registrations[0].CourseID != 1 {
		t.Fatalf("registrations = %+v, want course 1", store.registrations)
	}
}

func TestSubmitUnknownCourseReturnsNotFound(t *testing.T) {
	app := newSubmitApp(&stubStore{})

	if status := postSubmit(t, app, `{"courseIds":[999]}`); status != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}
