package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/services/programtype"
	"github.com/campusgate/uniportal/services/settings"
)

// fakeStore is an in-memory Store honoring the same contracts as GormStore,
// including all-or-nothing semantics on ReplaceRegistrations.
type fakeStore struct {
	students      map[uint]*model.Student // keyed by user id
	programmes    []model.StudentProgramme
	applications  []model.Application
	courses       []model.Course
	registrations []model.StudentCourseRegistration
}

func (f *fakeStore) StudentByUserID(_ context.Context, userID uint) (*model.Student, error) {
	if s, ok := f.students[userID]; ok {
		return s, nil
	}
	return nil, ErrStudentNotFound
}

func (f *fakeStore) ActiveProgramme(_ context.Context, studentID uint) (*model.StudentProgramme, error) {
	for i, p := range f.programmes {
		if p.StudentID != studentID {
			continue
		}
		for _, status := range model.ActiveProgrammeStatuses {
			if p.Status == status {
				return &f.programmes[i], nil
			}
		}
	}
	return nil, ErrNoActiveProgramme
}

func (f *fakeStore) LatestApplication(_ context.Context, studentID, programID uint) (*model.Application, error) {
	for i := len(f.applications) - 1; i >= 0; i-- {
		a := f.applications[i]
		if a.StudentID == studentID && a.ProgramID == programID {
			return &f.applications[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ActiveCourses(_ context.Context, programID uint) ([]model.Course, error) {
	var out []model.Course
	for _, c := range f.courses {
		if c.ProgramID == programID && c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) Registrations(_ context.Context, studentID uint, session string) ([]model.StudentCourseRegistration, error) {
	var out []model.StudentCourseRegistration
	for _, r := range f.registrations {
		if r.StudentID == studentID && r.Session == session {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) ReplaceRegistrations(_ context.Context, studentID uint, session, activeSemester string, courseIDs []uint) error {
	// Stage the replacement; commit only if every course resolves.
	var rows []model.StudentCourseRegistration
	for _, id := range courseIDs {
		var course *model.Course
		for i := range f.courses {
			if f.courses[i].ID == id {
				course = &f.courses[i]
				break
			}
		}
		if course == nil {
			return ErrCourseNotFound // prior rows untouched
		}
		semester := activeSemester
		if course.Semester != nil {
			semester = *course.Semester
		}
		rows = append(rows, model.StudentCourseRegistration{
			StudentID: studentID,
			Session:   session,
			CourseID:  id,
			Semester:  semester,
			Status:    model.RegistrationStatusRegistered,
		})
	}

	var kept []model.StudentCourseRegistration
	for _, r := range f.registrations {
		if r.StudentID != studentID || r.Session != session {
			kept = append(kept, r)
		}
	}
	f.registrations = append(kept, rows...)
	return nil
}

func newFixture() (*fakeStore, *Service) {
	program := model.Program{ID: 10, Name: "MSc Computer Science", Level: "Masters"}
	store := &fakeStore{
		students: map[uint]*model.Student{
			1: {ID: 100, UserID: 1, FirstName: "Ada", LastName: "Obi"},
		},
		programmes: []model.StudentProgramme{
			{ID: 1, StudentID: 100, ProgramID: 10, Status: model.ProgrammeStatusAdmitted, Program: program},
		},
		applications: []model.Application{
			{ID: 1, StudentID: 100, ProgramID: 10, ProgramType: "MSc"},
		},
		courses: []model.Course{
			{ID: 1, ProgramID: 10, Title: "Course X", Semester: strptr("First"), ProgramType: strptr("MASTERS"), IsActive: true, DisplayOrder: 1},
			{ID: 2, ProgramID: 10, Title: "Course Y", Semester: nil, ProgramType: nil, IsActive: true, DisplayOrder: 2},
			{ID: 3, ProgramID: 10, Title: "Second Sem", Semester: strptr("Second"), ProgramType: nil, IsActive: true, DisplayOrder: 3},
			{ID: 4, ProgramID: 10, Title: "Inactive", Semester: nil, ProgramType: nil, IsActive: false, DisplayOrder: 4},
		},
	}
	provider := settings.Static{
		model.SettingActiveSession:  "2025/2026",
		model.SettingActiveSemester: "First",
	}
	return store, NewService(store, provider)
}

func TestGetViewMatchesCoursesInDisplayOrder(t *testing.T) {
	_, svc := newFixture()

	view, err := svc.GetView(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetView: %v", err)
	}

	if view.ProgramTypeNormalized != programtype.Masters {
		t.Errorf("normalized type = %q, want MASTERS", view.ProgramTypeNormalized)
	}
	if view.ProgramType != "MSc" {
		t.Errorf("raw type = %q, want application value MSc", view.ProgramType)
	}
	if view.Session != "2025/2026" || view.Semester != "First" {
		t.Errorf("session/semester = %q/%q", view.Session, view.Semester)
	}
	if view.StudentName != "Ada Obi" {
		t.Errorf("student name = %q", view.StudentName)
	}

	// Course X (specific match) and Course Y (double wildcard), in order.
	if len(view.Courses) != 2 {
		t.Fatalf("matched %d courses, want 2", len(view.Courses))
	}
	if view.Courses[0].ID != 1 || view.Courses[1].ID != 2 {
		t.Errorf("course order = [%d %d], want [1 2]", view.Courses[0].ID, view.Courses[1].ID)
	}
}

func TestGetViewProgramTypeFallsBackToProgramLevel(t *testing.T) {
	store, svc := newFixture()
	store.applications = nil // no application on file

	view, err := svc.GetView(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetView: %v", err)
	}
	if view.ProgramType != "Masters" {
		t.Errorf("raw type = %q, want program level Masters", view.ProgramType)
	}
	if view.ProgramTypeNormalized != programtype.Masters {
		t.Errorf("normalized type = %q", view.ProgramTypeNormalized)
	}
}

func TestGetViewUnknownStudent(t *testing.T) {
	_, svc := newFixture()
	if _, err := svc.GetView(context.Background(), 99); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestGetViewNoActiveProgramme(t *testing.T) {
	store, svc := newFixture()
	store.programmes[0].Status = model.ProgrammeStatusWithdrawn

	if _, err := svc.GetView(context.Background(), 1); !errors.Is(err, ErrNoActiveProgramme) {
		t.Errorf("err = %v, want ErrNoActiveProgramme", err)
	}
}

func TestSubmitReplacesWholesale(t *testing.T) {
	store, svc := newFixture()
	ctx := context.Background()

	if err := svc.Submit(ctx, 1, []uint{1, 2}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := svc.Submit(ctx, 1, []uint{3}); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	regs, _ := store.Registrations(ctx, 100, "2025/2026")
	if len(regs) != 1 || regs[0].CourseID != 3 {
		t.Fatalf("registrations after resubmit = %+v, want exactly course 3", regs)
	}

	// Resubmitting the same set is idempotent in end-state.
	if err := svc.Submit(ctx, 1, []uint{3}); err != nil {
		t.Fatalf("repeat submit: %v", err)
	}
	regs, _ = store.Registrations(ctx, 100, "2025/2026")
	if len(regs) != 1 || regs[0].CourseID != 3 {
		t.Fatalf("registrations after repeat = %+v", regs)
	}
}

func TestSubmitNullSemesterCourseGetsActiveSemester(t *testing.T) {
	store, svc := newFixture()
	ctx := context.Background()

	if err := svc.Submit(ctx, 1, []uint{2}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	regs, _ := store.Registrations(ctx, 100, "2025/2026")
	if len(regs) != 1 || regs[0].Semester != "First" {
		t.Fatalf("regs = %+v, want semester First substituted", regs)
	}
	if regs[0].Status != model.RegistrationStatusRegistered {
		t.Errorf("status = %q", regs[0].Status)
	}
}

func TestSubmitInvalidCourseLeavesPriorSetIntact(t *testing.T) {
	store, svc := newFixture()
	ctx := context.Background()

	if err := svc.Submit(ctx, 1, []uint{1, 2}); err != nil {
		t.Fatalf("seed submit: %v", err)
	}
	if err := svc.Submit(ctx, 1, []uint{1, 999}); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}

	regs, _ := store.Registrations(ctx, 100, "2025/2026")
	if len(regs) != 2 {
		t.Fatalf("prior set damaged by failed submit: %+v", regs)
	}
}

func TestSubmitEmptySelectionClears(t *testing.T) {
	store, svc := newFixture()
	ctx := context.Background()

	if err := svc.Submit(ctx, 1, []uint{1, 2}); err != nil {
		t.Fatalf("seed submit: %v", err)
	}
	if err := svc.Submit(ctx, 1, nil); err != nil {
		t.Fatalf("clearing submit: %v", err)
	}

	regs, _ := store.Registrations(ctx, 100, "2025/2026")
	if len(regs) != 0 {
		t.Fatalf("regs = %+v, want empty", regs)
	}
}
