package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campus-labs/college-enroll-api/internal/models"
)

// detailColumns selects an enrollment with its student and course resolved.
// Reads never return bare references.
const detailColumns = `e.id, e.student_id, e.course_id, e.semester, e.grade, e.created_at, e.updated_at,
        s.id AS "student.id", s.student_id AS "student.student_id", s.name AS "student.name",
        s.email AS "student.email", s.program AS "student.program", s.is_active AS "student.is_active",
        s.created_at AS "student.created_at", s.updated_at AS "student.updated_at",
        c.id AS "course.id", c.course_code AS "course.course_code", c.title AS "course.title",
        c.description AS "course.description", c.credits AS "course.credits", c.instructor AS "course.instructor",
        c.max_students AS "course.max_students", c.is_offered AS "course.is_offered",
        c.created_at AS "course.created_at", c.updated_at AS "course.updated_at"`

const detailJoins = ` FROM enrollments e
        JOIN students s ON s.id = e.student_id
        JOIN courses c ON c.id = e.course_id`

// EnrollmentRepository handles persistence of enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// List returns enrollments newest first, student and course resolved.
func (r *EnrollmentRepository) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, error) {
	query := "SELECT " + detailColumns + detailJoins
	var args []interface{}
	clause := " WHERE 1=1"

	if filter.StudentID != "" {
		args = append(args, filter.StudentID)
		clause += fmt.Sprintf(" AND e.student_id = $%d", len(args))
	}
	if filter.CourseID != "" {
		args = append(args, filter.CourseID)
		clause += fmt.Sprintf(" AND e.course_id = $%d", len(args))
	}
	if filter.Semester != "" {
		args = append(args, filter.Semester)
		clause += fmt.Sprintf(" AND e.semester = $%d", len(args))
	}
	query += clause + " ORDER BY e.created_at DESC"

	enrollments := []models.EnrollmentDetail{}
	if err := r.db.SelectContext(ctx, &enrollments, query, args...); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

// FindByID returns an enrollment by its ID.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id string) (*models.Enrollment, error) {
	const query = `SELECT id, student_id, course_id, semester, grade, created_at, updated_at
        FROM enrollments WHERE id = $1`
	var enrollment models.Enrollment
	if err := r.db.GetContext(ctx, &enrollment, query, id); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// FindDetailByID returns an enrollment with student and course resolved.
func (r *EnrollmentRepository) FindDetailByID(ctx context.Context, id string) (*models.EnrollmentDetail, error) {
	query := "SELECT " + detailColumns + detailJoins + " WHERE e.id = $1"
	var detail models.EnrollmentDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CountForCourseSemester counts enrollments that occupy a seat: everything
// for the course and semester except withdrawals.
func (r *EnrollmentRepository) CountForCourseSemester(ctx context.Context, courseID, semester string) (int, error) {
	const query = `SELECT COUNT(*) FROM enrollments WHERE course_id = $1 AND semester = $2 AND grade <> $3`
	var count int
	if err := r.db.GetContext(ctx, &count, query, courseID, semester, models.GradeWithdrawn); err != nil {
		return 0, fmt.Errorf("count course enrollments: %w", err)
	}
	return count, nil
}

// CountByStudent counts enrollments referencing a student, any semester and
// any grade. Used for the soft-delete dependency check.
func (r *EnrollmentRepository) CountByStudent(ctx context.Context, studentID string) (int, error) {
	const query = `SELECT COUNT(*) FROM enrollments WHERE student_id = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, studentID); err != nil {
		return 0, fmt.Errorf("count student enrollments: %w", err)
	}
	return count, nil
}

// CountByCourse counts enrollments referencing a course, any semester and
// any grade.
func (r *EnrollmentRepository) CountByCourse(ctx context.Context, courseID string) (int, error) {
	const query = `SELECT COUNT(*) FROM enrollments WHERE course_id = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, courseID); err != nil {
		return 0, fmt.Errorf("count course references: %w", err)
	}
	return count, nil
}

// Create persists a new enrollment record. The compound unique index on
// (student_id, course_id, semester) rejects duplicates at this point.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if enrollment.CreatedAt.IsZero() {
		enrollment.CreatedAt = now
	}
	enrollment.UpdatedAt = now
	if enrollment.Grade == "" {
		enrollment.Grade = models.GradeInProgress
	}
	const query = `INSERT INTO enrollments (id, student_id, course_id, semester, grade, created_at, updated_at)
        VALUES (:id, :student_id, :course_id, :semester, :grade, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, enrollment); err != nil {
		return err
	}
	return nil
}

// Update modifies an existing enrollment.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	enrollment.UpdatedAt = time.Now().UTC()
	const query = `UPDATE enrollments SET student_id = :student_id, course_id = :course_id,
        semester = :semester, grade = :grade, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, enrollment); err != nil {
		return err
	}
	return nil
}

// Delete removes an enrollment outright. Enrollments are the leaves of the
// model; nothing depends on them.
func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM enrollments WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return nil
}
