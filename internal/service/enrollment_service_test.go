package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-labs/college-enroll-api/internal/models"
	appErrors "github.com/campus-labs/college-enroll-api/pkg/errors"
)

type enrollmentRepoStub struct {
	list      []models.EnrollmentDetail
	found     *models.Enrollment
	detail    *models.EnrollmentDetail
	count     int
	listErr   error
	findErr   error
	countErr  error
	createErr error
	updateErr error
	deleteErr error

	created      *models.Enrollment
	deleteCalled bool
	countCalls   int
}

func (s *enrollmentRepoStub) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, error) {
	return s.list, s.listErr
}

func (s *enrollmentRepoStub) FindByID(ctx context.Context, id string) (*models.Enrollment, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.found, nil
}

func (s *enrollmentRepoStub) FindDetailByID(ctx context.Context, id string) (*models.EnrollmentDetail, error) {
	return s.detail, nil
}

func (s *enrollmentRepoStub) CountForCourseSemester(ctx context.Context, courseID, semester string) (int, error) {
	s.countCalls++
	return s.count, s.countErr
}

func (s *enrollmentRepoStub) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if s.createErr != nil {
		return s.createErr
	}
	enrollment.ID = "enr-1"
	s.created = enrollment
	s.count++
	return nil
}

func (s *enrollmentRepoStub) Update(ctx context.Context, enrollment *models.Enrollment) error {
	return s.updateErr
}

func (s *enrollmentRepoStub) Delete(ctx context.Context, id string) error {
	s.deleteCalled = true
	return s.deleteErr
}

type studentReaderStub struct {
	student *models.Student
	err     error
}

func (s studentReaderStub) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.student, nil
}

type courseReaderStub struct {
	course *models.Course
	err    error
}

func (s courseReaderStub) FindByID(ctx context.Context, id string) (*models.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.course, nil
}

func enrollmentFixture() (*enrollmentRepoStub, studentReaderStub, courseReaderStub) {
	repo := &enrollmentRepoStub{detail: &models.EnrollmentDetail{}}
	students := studentReaderStub{student: &models.Student{ID: "stu-1", StudentID: "S10001"}}
	courses := courseReaderStub{course: &models.Course{ID: "crs-1", CourseCode: "COMP1234", MaxStudents: 30}}
	return repo, students, courses
}

func TestEnrollmentServiceCreateSuccess(t *testing.T) {
	repo, students, courses := enrollmentFixture()
	svc := NewEnrollmentService(repo, students, courses, nil, nil)

	detail, err := svc.Create(context.Background(), CreateEnrollmentRequest{
		StudentID: "stu-1",
		CourseID:  "crs-1",
		Semester:  "Fall 2024",
	})
	require.NoError(t, err)
	assert.NotNil(t, detail)
	require.NotNil(t, repo.created)
	assert.Equal(t, "stu-1", repo.created.StudentID)
}

func TestEnrollmentServiceCreateCourseNotFound(t *testing.T) {
	repo, students, _ := enrollmentFixture()
	svc := NewEnrollmentService(repo, students, courseReaderStub{err: sql.ErrNoRows}, nil, nil)

	_, err := svc.Create(context.Background(), CreateEnrollmentRequest{
		StudentID: "stu-1",
		CourseID:  "missing",
		Semester:  "Fall 2024",
	})
	e := assertErrorCode(t, err, appErrors.ErrNotFound)
	assert.Equal(t, "Course not found", e.Message)
	assert.Nil(t, repo.created)
}

func TestEnrollmentServiceCreateStudentNotFound(t *testing.T) {
	repo, _, courses := enrollmentFixture()
	svc := NewEnrollmentService(repo, studentReaderStub{err: sql.ErrNoRows}, courses, nil, nil)

	_, err := svc.Create(context.Background(), CreateEnrollmentRequest{
		StudentID: "missing",
		CourseID:  "crs-1",
		Semester:  "Fall 2024",
	})
	e := assertErrorCode(t, err, appErrors.ErrNotFound)
	assert.Equal(t, "Student not found", e.Message)
	assert.Nil(t, repo.created)
}

func TestEnrollmentServiceCreateInvalidSemester(t *testing.T) {
	repo, students, courses := enrollmentFixture()
	svc := NewEnrollmentService(repo, students, courses, nil, nil)

	_, err := svc.Create(context.Background(), CreateEnrollmentRequest{
		StudentID: "stu-1",
		CourseID:  "crs-1",
		Semester:  "Fall 2023",
	})
	e := assertErrorCode(t, err, appErrors.ErrValidation)
	assert.Contains(t, e.Message, "semester")
	assert.Zero(t, repo.countCalls, "capacity must not be checked for invalid payloads")
}

func TestEnrollmentServiceCreateEnforcesCapacity(t *testing.T) {
	repo, students, _ := enrollmentFixture()
	courses := courseReaderStub{course: &models.Course{ID: "crs-1", CourseCode: "COMP1234", MaxStudents: 2}}
	svc := NewEnrollmentService(repo, students, courses, nil, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), CreateEnrollmentRequest{
			StudentID: fmt.Sprintf("stu-%d", i),
			CourseID:  "crs-1",
			Semester:  "Fall 2024",
		})
		require.NoError(t, err, "enrollment %d should fit", i+1)
	}

	_, err := svc.Create(context.Background(), CreateEnrollmentRequest{
		StudentID: "stu-3",
		CourseID:  "crs-1",
		Semester:  "Fall 2024",
	})
	e := assertErrorCode(t, err, appErrors.ErrCapacityExceeded)
	assert.Equal(t, "Course is full", e.Message)
}

func TestEnrollmentServiceCreateSingleSeatCourse(t *testing.T) {
	repo, students, _ := enrollmentFixture()
	courses := courseReaderStub{course: &models.Course{ID: "crs-1", CourseCode: "COMP1234", MaxStudents: 1}}
	svc := NewEnrollmentService(repo, students, courses, nil, nil)

	_, err := svc.Create(context.Background(), CreateEnrollmentRequest{
		StudentID: "stu-1", CourseID: "crs-1", Semester: "Fall 2024",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateEnrollmentRequest{
		StudentID: "stu-2", CourseID: "crs-1", Semester: "Fall 2024",
	})
	assertErrorCode(t, err, appErrors.ErrCapacityExceeded)
}

func TestEnrollmentServiceCreateDuplicateTriple(t *testing.T) {
	repo, students, courses := enrollmentFixture()
	repo.createErr = &pq.Error{Code: "23505"}
	svc := NewEnrollmentService(repo, students, courses, nil, nil)

	_, err := svc.Create(context.Background(), CreateEnrollmentRequest{
		StudentID: "stu-1",
		CourseID:  "crs-1",
		Semester:  "Fall 2024",
		Grade:     "A",
	})
	e := assertErrorCode(t, err, appErrors.ErrDuplicateKey)
	assert.Equal(t, "Student is already enrolled in this course for this semester", e.Message)
}

func TestEnrollmentServiceUpdateNotFound(t *testing.T) {
	repo, students, courses := enrollmentFixture()
	repo.findErr = sql.ErrNoRows
	svc := NewEnrollmentService(repo, students, courses, nil, nil)

	_, err := svc.Update(context.Background(), "missing", UpdateEnrollmentRequest{
		StudentID: "stu-1",
		CourseID:  "crs-1",
		Semester:  "Fall 2024",
		Grade:     "A",
	})
	e := assertErrorCode(t, err, appErrors.ErrNotFound)
	assert.Equal(t, "Enrollment not found", e.Message)
}

func TestEnrollmentServiceUpdateRejectsInvalidGrade(t *testing.T) {
	repo, students, courses := enrollmentFixture()
	svc := NewEnrollmentService(repo, students, courses, nil, nil)

	_, err := svc.Update(context.Background(), "enr-1", UpdateEnrollmentRequest{
		StudentID: "stu-1",
		CourseID:  "crs-1",
		Semester:  "Fall 2024",
		Grade:     "Z",
	})
	assertErrorCode(t, err, appErrors.ErrValidation)
}

func TestEnrollmentServiceDeleteUnconditional(t *testing.T) {
	repo, students, courses := enrollmentFixture()
	repo.found = &models.Enrollment{ID: "enr-1", Grade: "A"}
	svc := NewEnrollmentService(repo, students, courses, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "enr-1"))
	assert.True(t, repo.deleteCalled)
}

func TestEnrollmentServiceDeleteNotFound(t *testing.T) {
	repo, students, courses := enrollmentFixture()
	repo.findErr = sql.ErrNoRows
	svc := NewEnrollmentService(repo, students, courses, nil, nil)

	err := svc.Delete(context.Background(), "missing")
	e := assertErrorCode(t, err, appErrors.ErrNotFound)
	assert.Equal(t, "Enrollment not found", e.Message)
	assert.False(t, repo.deleteCalled)
}
