package registration

import (
	"sort"
	"strings"

	"github.com/campusgate/uniportal/model"
)

// courseMatches decides whether a course is open under the active semester
// and the expanded programme-type variants. A NULL semester or programme
// type on the course is a wildcard matching anything; non-null values match
// case-insensitively. Programme ownership and is_active are filtered in SQL
// before this runs.
func courseMatches(c model.Course, activeSemester string, typeVariants []string) bool {
	if c.Semester != nil && !strings.EqualFold(*c.Semester, activeSemester) {
		return false
	}
	if c.ProgramType != nil {
		found := false
		for _, v := range typeVariants {
			if strings.EqualFold(*c.ProgramType, v) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// filterCourses applies courseMatches over a programme's active courses and
// keeps them in display order.
func filterCourses(courses []model.Course, activeSemester string, typeVariants []string) []model.Course {
	matched := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if courseMatches(c, activeSemester, typeVariants) {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].DisplayOrder < matched[j].DisplayOrder
	})
	return matched
}
