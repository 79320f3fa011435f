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

type courseRepository interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Retire(ctx context.Context, id string) error
}

type courseEnrollmentCounter interface {
	CountByCourse(ctx context.Context, courseID string) (int, error)
}

// CreateCourseRequest holds payload for creating courses. MaxStudents is a
// pointer so an absent value falls back to the default capacity.
type CreateCourseRequest struct {
	CourseCode  string `json:"courseCode" validate:"required,course_code"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"max=500"`
	Credits     int    `json:"credits" validate:"required,min=1,max=4"`
	Instructor  string `json:"instructor" validate:"required"`
	MaxStudents *int   `json:"maxStudents" validate:"omitempty,min=1"`
}

// UpdateCourseRequest holds payload for updating courses.
type UpdateCourseRequest struct {
	CourseCode  string `json:"courseCode" validate:"required,course_code"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"max=500"`
	Credits     int    `json:"credits" validate:"required,min=1,max=4"`
	Instructor  string `json:"instructor" validate:"required"`
	MaxStudents *int   `json:"maxStudents" validate:"omitempty,min=1"`
	IsOffered   *bool  `json:"isOffered"`
}

// CourseService handles course use-cases.
type CourseService struct {
	repo        courseRepository
	enrollments courseEnrollmentCounter
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, enrollments courseEnrollmentCounter, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, enrollments: enrollments, validator: validate, logger: logger}
}

// List returns offered courses sorted by course code.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	courses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Create registers a new course. The course code is upper-cased before
// validation and persistence; uniqueness is left to the store.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	normalizeCourseRequest(&req.CourseCode, &req.Title, &req.Description, &req.Instructor)
	if err := s.validator.Struct(req); err != nil {
		return nil, fieldError(err)
	}
	maxStudents := models.DefaultMaxStudents
	if req.MaxStudents != nil {
		maxStudents = *req.MaxStudents
	}
	course := &models.Course{
		CourseCode:  req.CourseCode,
		Title:       req.Title,
		Description: req.Description,
		Credits:     req.Credits,
		Instructor:  req.Instructor,
		MaxStudents: maxStudents,
		IsOffered:   true,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicateKey, "courseCode already in use")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	return course, nil
}

// Update modifies an existing course.
func (s *CourseService) Update(ctx context.Context, id string, req UpdateCourseRequest) (*models.Course, error) {
	normalizeCourseRequest(&req.CourseCode, &req.Title, &req.Description, &req.Instructor)
	if err := s.validator.Struct(req); err != nil {
		return nil, fieldError(err)
	}
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	course.CourseCode = req.CourseCode
	course.Title = req.Title
	course.Description = req.Description
	course.Credits = req.Credits
	course.Instructor = req.Instructor
	if req.MaxStudents != nil {
		course.MaxStudents = *req.MaxStudents
	}
	if req.IsOffered != nil {
		course.IsOffered = *req.IsOffered
	}
	if err := s.repo.Update(ctx, course); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicateKey, "courseCode already in use")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	return course, nil
}

// Retire soft-deletes a course. Any enrollment referencing the course
// blocks the deletion.
func (s *CourseService) Retire(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	count, err := s.enrollments.CountByCourse(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count enrollments")
	}
	if count > 0 {
		return appErrors.Clone(appErrors.ErrDependencyExists, "Cannot delete course with active enrollments. Remove enrollments first.")
	}
	if err := s.repo.Retire(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to retire course")
	}
	return nil
}

func normalizeCourseRequest(code, title, description, instructor *string) {
	*code = strings.ToUpper(strings.TrimSpace(*code))
	*title = strings.TrimSpace(*title)
	*description = strings.TrimSpace(*description)
	*instructor = strings.TrimSpace(*instructor)
}
