package database

import (
	"github.com/jmoiron/sqlx"
)

// Schema bootstrap. Run at startup; every statement is idempotent. The
// unique indexes are load-bearing: they enforce studentId/email/courseCode
// uniqueness and the one-enrollment-per-(student, course, semester) rule.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS students (
        id          TEXT PRIMARY KEY,
        student_id  TEXT NOT NULL,
        name        TEXT NOT NULL,
        email       TEXT NOT NULL,
        program     TEXT NOT NULL,
        is_active   BOOLEAN NOT NULL DEFAULT TRUE,
        created_at  TIMESTAMPTZ NOT NULL,
        updated_at  TIMESTAMPTZ NOT NULL
    )`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_students_student_id ON students(student_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_students_email ON students(email)`,
	`CREATE TABLE IF NOT EXISTS courses (
        id           TEXT PRIMARY KEY,
        course_code  TEXT NOT NULL,
        title        TEXT NOT NULL,
        description  TEXT NOT NULL DEFAULT '',
        credits      INTEGER NOT NULL,
        instructor   TEXT NOT NULL,
        max_students INTEGER NOT NULL DEFAULT 30,
        is_offered   BOOLEAN NOT NULL DEFAULT TRUE,
        created_at   TIMESTAMPTZ NOT NULL,
        updated_at   TIMESTAMPTZ NOT NULL
    )`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_courses_course_code ON courses(course_code)`,
	`CREATE TABLE IF NOT EXISTS enrollments (
        id         TEXT PRIMARY KEY,
        student_id TEXT NOT NULL REFERENCES students(id),
        course_id  TEXT NOT NULL REFERENCES courses(id),
        semester   TEXT NOT NULL,
        grade      TEXT NOT NULL DEFAULT 'In Progress',
        created_at TIMESTAMPTZ NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL
    )`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_enrollments_triple ON enrollments(student_id, course_id, semester)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_course_semester ON enrollments(course_id, semester)`,
}

// EnsureSchema creates the tables and indexes if they do not exist.
func EnsureSchema(db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
