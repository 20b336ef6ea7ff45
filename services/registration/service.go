// Package registration implements self-service course registration: working
// out which courses are open to a student under the active session and
// semester, and replacing the student's registration set atomically on
// submission.
package registration

import (
	"context"
	"log"

	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/services/programtype"
	"github.com/campusgate/uniportal/services/settings"
)

// Service orchestrates the registration read and write paths.
type Service struct {
	store    Store
	settings settings.Provider
}

// NewService creates a registration service
func NewService(store Store, provider settings.Provider) *Service {
	return &Service{store: store, settings: provider}
}

// View is the read-path result: everything the registration page needs.
type View struct {
	Program               model.Program  `json:"program"`
	ProgramType           string         `json:"programType"`
	ProgramTypeNormalized string         `json:"programTypeNormalized"`
	Session               string         `json:"session"`
	Semester              string         `json:"semester"`
	Courses               []model.Course `json:"courses"`
	RegisteredCourseIDs   []uint         `json:"registeredCourseIds"`
	StudentName           string         `json:"studentName"`
}

// GetView resolves the courses open to the student under the active session
// and semester, alongside their current registrations.
func (s *Service) GetView(ctx context.Context, userID uint) (*View, error) {
	student, err := s.store.StudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	programme, err := s.store.ActiveProgramme(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	session, err := s.settings.Get(ctx, model.SettingActiveSession)
	if err != nil {
		return nil, err
	}
	semester, err := s.settings.Get(ctx, model.SettingActiveSemester)
	if err != nil {
		return nil, err
	}

	rawType := s.resolveProgramType(ctx, student.ID, programme)
	normalized := programtype.Normalize(rawType)

	courses, err := s.store.ActiveCourses(ctx, programme.ProgramID)
	if err != nil {
		return nil, err
	}
	matched := filterCourses(courses, semester, programtype.Variants(normalized))

	regs, err := s.store.Registrations(ctx, student.ID, session)
	if err != nil {
		return nil, err
	}
	registeredIDs := make([]uint, 0, len(regs))
	for _, r := range regs {
		registeredIDs = append(registeredIDs, r.CourseID)
	}

	return &View{
		Program:               programme.Program,
		ProgramType:           rawType,
		ProgramTypeNormalized: normalized,
		Session:               session,
		Semester:              semester,
		Courses:               matched,
		RegisteredCourseIDs:   registeredIDs,
		StudentName:           student.FullName(),
	}, nil
}

// Submit replaces the student's registration set for the active session with
// the submitted course ids. An empty selection clears the set.
func (s *Service) Submit(ctx context.Context, userID uint, courseIDs []uint) error {
	student, err := s.store.StudentByUserID(ctx, userID)
	if err != nil {
		return err
	}

	session, err := s.settings.Get(ctx, model.SettingActiveSession)
	if err != nil {
		return err
	}
	semester, err := s.settings.Get(ctx, model.SettingActiveSemester)
	if err != nil {
		return err
	}

	return s.store.ReplaceRegistrations(ctx, student.ID, session, semester, courseIDs)
}

// resolveProgramType prefers the type the applicant entered on their
// application, falling back to the programme's level. Both absent is a data
// problem worth surfacing in the logs, but registration still proceeds with
// the empty string normalized through as-is.
func (s *Service) resolveProgramType(ctx context.Context, studentID uint, programme *model.StudentProgramme) string {
	application, err := s.store.LatestApplication(ctx, studentID, programme.ProgramID)
	if err == nil && application != nil && application.ProgramType != "" {
		return application.ProgramType
	}
	if programme.Program.Level != "" {
		return programme.Program.Level
	}
	log.Printf("registration: student %d programme %d has no program type on application or program level", studentID, programme.ID)
	return ""
}
