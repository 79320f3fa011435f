package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepositoryCollect(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStatsRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM students WHERE is_active = TRUE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM courses WHERE is_offered = TRUE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM enrollments").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(20))

	stats, err := repo.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, stats.Students)
	assert.Equal(t, 5, stats.Courses)
	assert.Equal(t, 20, stats.Enrollments)
	assert.NoError(t, mock.ExpectationsWereMet())
}
