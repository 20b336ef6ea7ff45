package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusgate/uniportal/model"
	"gorm.io/gorm"
)

// Store is the persistence seam for the registration service. The GORM
// implementation below is the real one; tests substitute a fake.
type Store interface {
	StudentByUserID(ctx context.Context, userID uint) (*model.Student, error)
	ActiveProgramme(ctx context.Context, studentID uint) (*model.StudentProgramme, error)
	LatestApplication(ctx context.Context, studentID, programID uint) (*model.Application, error)
	ActiveCourses(ctx context.Context, programID uint) ([]model.Course, error)
	Registrations(ctx context.Context, studentID uint, session string) ([]model.StudentCourseRegistration, error)

	// ReplaceRegistrations atomically deletes every registration row for
	// (studentID, session) and inserts one REGISTERED row per course id.
	// Courses with a NULL semester are recorded under activeSemester.
	// Returns ErrCourseNotFound (and leaves the prior rows intact) when any
	// course id does not exist.
	ReplaceRegistrations(ctx context.Context, studentID uint, session, activeSemester string, courseIDs []uint) error
}

// GormStore is the production Store over *gorm.DB.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a GORM-backed registration store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) StudentByUserID(ctx context.Context, userID uint) (*model.Student, error) {
	var student model.Student
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// ActiveProgramme returns the first programme row carrying an active status,
// oldest first so historical ordering stays stable.
func (s *GormStore) ActiveProgramme(ctx context.Context, studentID uint) (*model.StudentProgramme, error) {
	var programme model.StudentProgramme
	err := s.db.WithContext(ctx).
		Preload("Program").
		Where("student_id = ? AND status IN ?", studentID, model.ActiveProgrammeStatuses).
		Order("id ASC").
		First(&programme).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveProgramme
		}
		return nil, err
	}
	return &programme, nil
}

// LatestApplication returns the student's most recent application for the
// programme, or nil when none exists.
func (s *GormStore) LatestApplication(ctx context.Context, studentID, programID uint) (*model.Application, error) {
	var application model.Application
	err := s.db.WithContext(ctx).
		Where("student_id = ? AND program_id = ?", studentID, programID).
		Order("id DESC").
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

// ActiveCourses fetches the programme's active offerings in display order.
// Semester and programme-type wildcard filtering happens in memory so the
// NULL-means-any semantics stay in one place (see courseMatches).
func (s *GormStore) ActiveCourses(ctx context.Context, programID uint) ([]model.Course, error) {
	var courses []model.Course
	err := s.db.WithContext(ctx).
		Where("program_id = ? AND is_active = ?", programID, true).
		Order("display_order ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStore) Registrations(ctx context.Context, studentID uint, session string) ([]model.StudentCourseRegistration, error) {
	var regs []model.StudentCourseRegistration
	err := s.db.WithContext(ctx).
		Where("student_id = ? AND session = ?", studentID, session).
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (s *GormStore) ReplaceRegistrations(ctx context.Context, studentID uint, session, activeSemester string, courseIDs []uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Wholesale replace: clear the session's rows first so a
		// resubmission can never leave orphans or duplicates behind.
		if err := tx.Unscoped().
			Where("student_id = ? AND session = ?", studentID, session).
			Delete(&model.StudentCourseRegistration{}).Error; err != nil {
			return fmt.Errorf("failed to clear existing registrations: %w", err)
		}

		if len(courseIDs) == 0 {
			return nil
		}

		var courses []model.Course
		if err := tx.Where("id IN ?", courseIDs).Find(&courses).Error; err != nil {
			return fmt.Errorf("failed to look up courses: %w", err)
		}
		if len(courses) != len(dedupe(courseIDs)) {
			// Unknown course id: abort so the delete above rolls back too.
			return ErrCourseNotFound
		}

		rows := make([]model.StudentCourseRegistration, 0, len(courses))
		for _, course := range courses {
			semester := activeSemester
			if course.Semester != nil {
				semester = *course.Semester
			}
			rows = append(rows, model.StudentCourseRegistration{
				StudentID: studentID,
				Session:   session,
				CourseID:  course.ID,
				Semester:  semester,
				Status:    model.RegistrationStatusRegistered,
			})
		}

		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert registrations: %w", err)
		}
		return nil
	})
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
