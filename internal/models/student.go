package models

import "time"

// Programs a student can be registered in.
const (
	ProgramWebDevelopment       = "Web Development"
	ProgramMobileDevelopment    = "Mobile Development"
	ProgramDataScience          = "Data Science"
	ProgramFullStackDevelopment = "Full Stack Development"
)

// Programs lists the accepted program names.
var Programs = []string{
	ProgramWebDevelopment,
	ProgramMobileDevelopment,
	ProgramDataScience,
	ProgramFullStackDevelopment,
}

// Student represents a learner registered at the college. Deletion is soft:
// IsActive flips to false and the record stays for historical enrollments.
type Student struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"studentId"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Program   string    `db:"program" json:"program"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// StudentFilter encapsulates search parameters for listing students.
type StudentFilter struct {
	Search  string
	Program string
}
