package models

import "time"

// Semesters a student can enroll for.
var Semesters = []string{
	"Fall 2024",
	"Winter 2025",
	"Spring 2025",
	"Summer 2025",
}

// Grade values. GradeInProgress is the default at enrollment time;
// GradeWithdrawn excludes an enrollment from capacity counting.
const (
	GradeInProgress = "In Progress"
	GradeWithdrawn  = "Withdrawn"
)

// Grades lists the accepted grade values.
var Grades = []string{
	"A+", "A", "A-",
	"B+", "B", "B-",
	"C+", "C", "C-",
	"D", "F",
	GradeInProgress, GradeWithdrawn,
}

// Enrollment links one student to one course for a semester. The
// (student, course, semester) triple is unique. Enrollments are
// hard-deleted; nothing references them.
type Enrollment struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"studentId"`
	CourseID  string    `db:"course_id" json:"courseId"`
	Semester  string    `db:"semester" json:"semester"`
	Grade     string    `db:"grade" json:"grade"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// EnrollmentDetail is an enrollment with its student and course resolved.
// Every read path returns this shape, never bare identifiers.
type EnrollmentDetail struct {
	Enrollment
	Student Student `db:"student" json:"student"`
	Course  Course  `db:"course" json:"course"`
}

// EnrollmentFilter provides filters for listing enrollments.
type EnrollmentFilter struct {
	StudentID string
	CourseID  string
	Semester  string
}
