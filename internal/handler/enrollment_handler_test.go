package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-labs/college-enroll-api/internal/models"
	"github.com/campus-labs/college-enroll-api/internal/service"
	appErrors "github.com/campus-labs/college-enroll-api/pkg/errors"
)

type enrollmentServiceMock struct {
	listResp   []models.EnrollmentDetail
	listErr    error
	createResp *models.EnrollmentDetail
	createErr  error
	updateResp *models.EnrollmentDetail
	updateErr  error
	deleteErr  error

	lastFilter   models.EnrollmentFilter
	createCalled bool
	deleteCalled bool
}

func (m *enrollmentServiceMock) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.EnrollmentDetail, error) {
	m.lastFilter = filter
	return m.listResp, m.listErr
}

func (m *enrollmentServiceMock) Create(ctx context.Context, req service.CreateEnrollmentRequest) (*models.EnrollmentDetail, error) {
	m.createCalled = true
	return m.createResp, m.createErr
}

func (m *enrollmentServiceMock) Update(ctx context.Context, id string, req service.UpdateEnrollmentRequest) (*models.EnrollmentDetail, error) {
	return m.updateResp, m.updateErr
}

func (m *enrollmentServiceMock) Delete(ctx context.Context, id string) error {
	m.deleteCalled = true
	return m.deleteErr
}

func TestEnrollmentHandlerListPassesFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &enrollmentServiceMock{}
	h := NewEnrollmentHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/enrollments?studentId=stu-1&semester=Fall+2024", nil)
	c.Request = req

	h.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "stu-1", mockSvc.lastFilter.StudentID)
	assert.Equal(t, "Fall 2024", mockSvc.lastFilter.Semester)
}

func TestEnrollmentHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &enrollmentServiceMock{
		createResp: &models.EnrollmentDetail{
			Enrollment: models.Enrollment{ID: "enr-1", Semester: "Fall 2024", Grade: models.GradeInProgress},
			Student:    models.Student{StudentID: "S10001", Name: "Alice Johnson"},
			Course:     models.Course{CourseCode: "COMP1234"},
		},
	}
	h := NewEnrollmentHandler(mockSvc)

	payload, _ := json.Marshal(service.CreateEnrollmentRequest{StudentID: "stu-1", CourseID: "crs-1", Semester: "Fall 2024"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockSvc.createCalled)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	student, ok := body["student"].(map[string]interface{})
	require.True(t, ok, "response must embed the resolved student")
	assert.Equal(t, "Alice Johnson", student["name"])
}

func TestEnrollmentHandlerCreateCourseFull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &enrollmentServiceMock{
		createErr: appErrors.ErrCapacityExceeded,
	}
	h := NewEnrollmentHandler(mockSvc)

	payload, _ := json.Marshal(service.CreateEnrollmentRequest{StudentID: "stu-1", CourseID: "crs-1", Semester: "Fall 2024"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "COURSE_FULL", body["code"])
}

func TestEnrollmentHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &enrollmentServiceMock{}
	h := NewEnrollmentHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/enrollments/enr-1", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "enr-1"}}

	h.Delete(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.deleteCalled)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Enrollment deleted successfully", body["message"])
}
