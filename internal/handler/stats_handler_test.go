package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-labs/college-enroll-api/internal/models"
)

type statsServiceMock struct {
	stats models.Stats
	err   error
}

func (m *statsServiceMock) Get(ctx context.Context) (models.Stats, error) {
	return m.stats, m.err
}

func TestStatsHandlerGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewStatsHandler(&statsServiceMock{stats: models.Stats{Students: 8, Courses: 5, Enrollments: 20}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/stats", nil)
	c.Request = req

	h.Get(c)
	require.Equal(t, http.StatusOK, w.Code)

	var body models.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 8, body.Students)
	assert.Equal(t, 5, body.Courses)
	assert.Equal(t, 20, body.Enrollments)
}
