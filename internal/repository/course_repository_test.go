package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-labs/college-enroll-api/internal/models"
)

func courseColumns() []string {
	return []string{"id", "course_code", "title", "description", "credits", "instructor", "max_students", "is_offered", "created_at", "updated_at"}
}

func TestCourseRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	rows := sqlmock.NewRows(courseColumns()).
		AddRow("uuid-1", "COMP1001", "Introduction to Programming", "Fundamentals", 3, "Prof. Williams", 30, true, time.Now(), time.Now())
	mock.ExpectQuery("(?s)SELECT (.+) FROM courses WHERE is_offered = TRUE ORDER BY course_code ASC").
		WillReturnRows(rows)

	courses, err := repo.List(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "COMP1001", courses[0].CourseCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryListSearch(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery("(?s)SELECT (.+) FROM courses WHERE is_offered = TRUE AND \\(LOWER\\(course_code\\) LIKE (.+) OR LOWER\\(title\\) LIKE (.+)\\) ORDER BY course_code ASC").
		WithArgs("%comp%").
		WillReturnRows(sqlmock.NewRows(courseColumns()))

	courses, err := repo.List(context.Background(), models.CourseFilter{Search: "COMP"})
	require.NoError(t, err)
	assert.Empty(t, courses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec("INSERT INTO courses").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	course := &models.Course{CourseCode: "COMP1001", Title: "Introduction to Programming", Credits: 3, Instructor: "Prof. Williams", MaxStudents: 30, IsOffered: true}
	err := repo.Create(context.Background(), course)
	require.NoError(t, err)
	assert.NotEmpty(t, course.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryRetire(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec("UPDATE courses SET is_offered = FALSE").
		WithArgs("uuid-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Retire(context.Background(), "uuid-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
