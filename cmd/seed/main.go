package main

import (
	"context"
	"log"
	"time"

	"github.com/campus-labs/college-enroll-api/internal/models"
	"github.com/campus-labs/college-enroll-api/internal/repository"
	"github.com/campus-labs/college-enroll-api/pkg/config"
	"github.com/campus-labs/college-enroll-api/pkg/database"
)

var seedStudents = []models.Student{
	{StudentID: "S10001", Name: "Alice Johnson", Email: "alice.johnson@college.com", Program: models.ProgramFullStackDevelopment},
	{StudentID: "S10002", Name: "Bob Smith", Email: "bob.smith@college.com", Program: models.ProgramWebDevelopment},
	{StudentID: "S10003", Name: "Carol Davis", Email: "carol.davis@college.com", Program: models.ProgramMobileDevelopment},
	{StudentID: "S10004", Name: "David Wilson", Email: "david.wilson@college.com", Program: models.ProgramDataScience},
	{StudentID: "S10005", Name: "Emma Brown", Email: "emma.brown@college.com", Program: models.ProgramFullStackDevelopment},
	{StudentID: "S10006", Name: "Frank Miller", Email: "frank.miller@college.com", Program: models.ProgramWebDevelopment},
	{StudentID: "S10007", Name: "Grace Lee", Email: "grace.lee@college.com", Program: models.ProgramMobileDevelopment},
	{StudentID: "S10008", Name: "Henry Taylor", Email: "henry.taylor@college.com", Program: models.ProgramDataScience},
}

var seedCourses = []models.Course{
	{CourseCode: "MADS4012", Title: "Full Stack Web Development", Description: "Learn to build modern web applications using Node.js, Express, and MongoDB.", Credits: 3, Instructor: "Prof. Anderson", MaxStudents: 25},
	{CourseCode: "COMP1001", Title: "Introduction to Programming", Description: "Fundamentals of programming using JavaScript.", Credits: 3, Instructor: "Prof. Williams", MaxStudents: 30},
	{CourseCode: "DATA2001", Title: "Database Management Systems", Description: "Study both SQL and NoSQL databases.", Credits: 4, Instructor: "Prof. Davis", MaxStudents: 20},
	{CourseCode: "WEBD3000", Title: "Advanced Frontend Development", Description: "Master React, Vue, and modern CSS frameworks.", Credits: 3, Instructor: "Prof. Martinez", MaxStudents: 25},
	{CourseCode: "MOBL2005", Title: "Mobile App Development", Description: "Create native and cross-platform mobile applications.", Credits: 3, Instructor: "Prof. Thompson", MaxStudents: 20},
	{CourseCode: "SECU3001", Title: "Web Security Fundamentals", Description: "Learn about common security vulnerabilities.", Credits: 2, Instructor: "Prof. Roberts", MaxStudents: 30},
	{CourseCode: "APIS4001", Title: "RESTful API Design", Description: "Design and implement scalable RESTful APIs.", Credits: 3, Instructor: "Prof. Chen", MaxStudents: 25},
	{CourseCode: "DEVP4500", Title: "DevOps and Deployment", Description: "Learn CI/CD, containerization with Docker.", Credits: 3, Instructor: "Prof. Kumar", MaxStudents: 20},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("clearing existing data")
	for _, table := range []string{"enrollments", "students", "courses"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("failed to clear %s: %v", table, err)
		}
	}

	studentRepo := repository.NewStudentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	students := make([]models.Student, len(seedStudents))
	for i, s := range seedStudents {
		s.IsActive = true
		if err := studentRepo.Create(ctx, &s); err != nil {
			log.Fatalf("failed to insert student %s: %v", s.StudentID, err)
		}
		students[i] = s
	}
	log.Printf("inserted %d students", len(students))

	courses := make([]models.Course, len(seedCourses))
	for i, c := range seedCourses {
		c.IsOffered = true
		if err := courseRepo.Create(ctx, &c); err != nil {
			log.Fatalf("failed to insert course %s: %v", c.CourseCode, err)
		}
		courses[i] = c
	}
	log.Printf("inserted %d courses", len(courses))

	// First half of the roster takes three Fall 2024 courses with grades,
	// second half takes two Winter 2025 courses still in progress.
	fallGrades := []string{"In Progress", "In Progress", "A", "B+"}
	created := 0
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			e := models.Enrollment{
				StudentID: students[i].ID,
				CourseID:  courses[(i+j)%len(courses)].ID,
				Semester:  "Fall 2024",
				Grade:     fallGrades[i],
			}
			if err := enrollmentRepo.Create(ctx, &e); err != nil {
				log.Fatalf("failed to insert enrollment: %v", err)
			}
			created++
		}
	}
	for i := 4; i < 8; i++ {
		for j := 0; j < 2; j++ {
			e := models.Enrollment{
				StudentID: students[i].ID,
				CourseID:  courses[(i+j)%len(courses)].ID,
				Semester:  "Winter 2025",
				Grade:     models.GradeInProgress,
			}
			if err := enrollmentRepo.Create(ctx, &e); err != nil {
				log.Fatalf("failed to insert enrollment: %v", err)
			}
			created++
		}
	}
	log.Printf("created %d enrollments", created)

	log.Println("database seeded successfully")
}
