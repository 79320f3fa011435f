package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campus-labs/college-enroll-api/internal/models"
	"github.com/campus-labs/college-enroll-api/pkg/database"
	appErrors "github.com/campus-labs/college-enroll-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Deactivate(ctx context.Context, id string) error
}

type studentEnrollmentCounter interface {
	CountByStudent(ctx context.Context, studentID string) (int, error)
}

// CreateStudentRequest holds payload for creating students.
type CreateStudentRequest struct {
	StudentID string `json:"studentId" validate:"required,student_id"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Program   string `json:"program" validate:"required,program"`
}

// UpdateStudentRequest holds payload for updating students. IsActive is
// optional so a PUT can reactivate a soft-deleted student.
type UpdateStudentRequest struct {
	StudentID string `json:"studentId" validate:"required,student_id"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Program   string `json:"program" validate:"required,program"`
	IsActive  *bool  `json:"isActive"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo        studentRepository
	enrollments studentEnrollmentCounter
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, enrollments studentEnrollmentCounter, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, enrollments: enrollments, validator: validate, logger: logger}
}

// List returns active students sorted by name.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	students, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Create registers a new student. Normalization happens before validation
// and persistence; uniqueness of studentId and email is left to the store.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	normalizeStudentRequest(&req.StudentID, &req.Name, &req.Email, &req.Program)
	if err := s.validator.Struct(req); err != nil {
		return nil, fieldError(err)
	}
	student := &models.Student{
		StudentID: req.StudentID,
		Name:      req.Name,
		Email:     req.Email,
		Program:   req.Program,
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicateKey, "studentId or email already in use")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	return student, nil
}

// Update modifies an existing student record.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*models.Student, error) {
	normalizeStudentRequest(&req.StudentID, &req.Name, &req.Email, &req.Program)
	if err := s.validator.Struct(req); err != nil {
		return nil, fieldError(err)
	}
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	student.StudentID = req.StudentID
	student.Name = req.Name
	student.Email = req.Email
	student.Program = req.Program
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, student); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicateKey, "studentId or email already in use")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	return student, nil
}

// Deactivate soft-deletes a student. Any enrollment referencing the student,
// whatever its grade or semester, blocks the deletion.
func (s *StudentService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	count, err := s.enrollments.CountByStudent(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count enrollments")
	}
	if count > 0 {
		return appErrors.Clone(appErrors.ErrDependencyExists, "Cannot delete student with active enrollments. Remove enrollments first.")
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to deactivate student")
	}
	return nil
}

func normalizeStudentRequest(studentID, name, email, program *string) {
	*studentID = strings.TrimSpace(*studentID)
	*name = strings.TrimSpace(*name)
	*email = strings.ToLower(strings.TrimSpace(*email))
	*program = strings.TrimSpace(*program)
}
