package registration

import (
	"testing"

	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/services/programtype"
)

func strptr(s string) *string { return &s }

func TestCourseMatchesWildcards(t *testing.T) {
	variants := programtype.Variants(programtype.Masters)

	tests := []struct {
		name   string
		course model.Course
		want   bool
	}{
		{
			name:   "null semester and type match anything",
			course: model.Course{Semester: nil, ProgramType: nil},
			want:   true,
		},
		{
			name:   "null semester, matching type",
			course: model.Course{Semester: nil, ProgramType: strptr("MSc")},
			want:   true,
		},
		{
			name:   "matching semester ignores case",
			course: model.Course{Semester: strptr("fIrSt"), ProgramType: nil},
			want:   true,
		},
		{
			name:   "wrong semester",
			course: model.Course{Semester: strptr("Second"), ProgramType: nil},
			want:   false,
		},
		{
			name:   "legacy lowercase type variant",
			course: model.Course{Semester: strptr("First"), ProgramType: strptr("m.sc")},
			want:   true,
		},
		{
			name:   "type outside variant list",
			course: model.Course{Semester: strptr("First"), ProgramType: strptr("PGD")},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := courseMatches(tt.course, "First", variants); got != tt.want {
				t.Errorf("courseMatches() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Null semester must match regardless of which semester is active.
func TestCourseMatchesNullSemesterAnyActive(t *testing.T) {
	course := model.Course{Semester: nil, ProgramType: nil}
	for _, active := range []string{"First", "Second", "Summer"} {
		if !courseMatches(course, active, nil) {
			t.Errorf("null semester did not match active semester %q", active)
		}
	}
}

func TestFilterCoursesDisplayOrder(t *testing.T) {
	courses := []model.Course{
		{ID: 1, DisplayOrder: 3},
		{ID: 2, DisplayOrder: 1, Semester: strptr("Second")},
		{ID: 3, DisplayOrder: 2},
		{ID: 4, DisplayOrder: 1},
	}

	got := filterCourses(courses, "First", nil)
	wantIDs := []uint{4, 3, 1} // course 2 filtered out, rest by display order
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d courses, want %d", len(got), len(wantIDs))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("position %d: course %d, want %d", i, got[i].ID, want)
		}
	}
}
