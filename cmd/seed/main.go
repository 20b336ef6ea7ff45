// Command seed loads demo data into a development database: a demo student
// with an admitted programme, a small course catalog exercising the
// wildcard semester/programme-type columns, and an access code for the
// project archive.
package main

import (
	"log"

	"github.com/campusgate/uniportal/config"
	"github.com/campusgate/uniportal/database"
	"github.com/campusgate/uniportal/model"
	"github.com/campusgate/uniportal/utils/auth"
	"gorm.io/gorm"
)

func main() {
	if err := config.LoadENV(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatal(err)
	}
	if err := database.Seed(store.DB()); err != nil {
		log.Fatal(err)
	}
	if err := seedDemoData(store.DB()); err != nil {
		log.Fatal(err)
	}

	log.Println("Demo data seeded.")
}

func seedDemoData(db *gorm.DB) error {
	var program model.Program
	if err := db.Where("code = ?", "MSC-CS").First(&program).Error; err != nil {
		return err
	}

	first := "First"
	second := "Second"
	masters := "MASTERS"
	legacyMsc := "MSc" // legacy casing on purpose, exercised by the variant shim

	courses := []model.Course{
		{ProgramID: program.ID, Title: "Advanced Algorithms", Code: "CSC 801", Semester: &first, ProgramType: &masters, CreditHours: 3, IsActive: true, DisplayOrder: 1},
		{ProgramID: program.ID, Title: "Research Methodology", Code: "CSC 803", Semester: nil, ProgramType: nil, CreditHours: 2, IsActive: true, DisplayOrder: 2},
		{ProgramID: program.ID, Title: "Distributed Systems", Code: "CSC 805", Semester: &first, ProgramType: &legacyMsc, CreditHours: 3, IsActive: true, DisplayOrder: 3},
		{ProgramID: program.ID, Title: "Machine Learning", Code: "CSC 802", Semester: &second, ProgramType: &masters, CreditHours: 3, IsActive: true, DisplayOrder: 4},
	}
	for i := range courses {
		var existing model.Course
		if err := db.Where("code = ?", courses[i].Code).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&courses[i]).Error; err != nil {
			return err
		}
	}

	hash, err := auth.HashPassword("demo-student-1")
	if err != nil {
		return err
	}
	user := model.User{
		Email:        "student@portal.edu",
		PasswordHash: hash,
		Name:         "Ada Obi",
		Role:         model.RoleStudent,
	}
	if err := db.Where("email = ?", user.Email).FirstOrCreate(&user).Error; err != nil {
		return err
	}

	student := model.Student{
		UserID:    user.ID,
		MatricNo:  "MSC/CS/0001",
		FirstName: "Ada",
		LastName:  "Obi",
	}
	if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&student).Error; err != nil {
		return err
	}

	programme := model.StudentProgramme{
		StudentID: student.ID,
		ProgramID: program.ID,
		Session:   "2025/2026",
		Status:    model.ProgrammeStatusAdmitted,
	}
	if err := db.Where("student_id = ? AND program_id = ?", student.ID, program.ID).
		FirstOrCreate(&programme).Error; err != nil {
		return err
	}

	code := model.AccessCode{
		Code:     "DEMO-CODE",
		Label:    "Development access code",
		MaxUses:  0,
		IsActive: true,
	}
	return db.Where("code = ?", code.Code).FirstOrCreate(&code).Error
}
