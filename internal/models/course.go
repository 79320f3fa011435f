package models

import "time"

// DefaultMaxStudents is the enrollment capacity applied when a course is
// created without one.
const DefaultMaxStudents = 30

// Course represents an offered course. Retiring a course flips IsOffered to
// false; the record stays so past enrollments keep resolving.
type Course struct {
	ID          string    `db:"id" json:"id"`
	CourseCode  string    `db:"course_code" json:"courseCode"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description,omitempty"`
	Credits     int       `db:"credits" json:"credits"`
	Instructor  string    `db:"instructor" json:"instructor"`
	MaxStudents int       `db:"max_students" json:"maxStudents"`
	IsOffered   bool      `db:"is_offered" json:"isOffered"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// CourseFilter encapsulates search parameters for listing courses.
type CourseFilter struct {
	Search string
}
