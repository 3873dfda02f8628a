package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bananadb/internal/domain"
	"bananadb/internal/handler"
	"bananadb/internal/service"
	"bananadb/mocks"
)

func TestProjectHandler_Create_Success(t *testing.T) {
	mockProject := new(mocks.MockProjectService)
	h := handler.NewProjectHandler(mockProject)

	claims := testClaims()
	mockProject.On("Create", mock.Anything, claims.UserID, mock.AnythingOfType("service.CreateProjectInput")).
		Return(&domain.Project{ID: uuid.New(), Make: "BMW", Model: "320d"}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"make":             "BMW",
		"model":            "320d",
		"year_range_start": 2018,
		"year_range_end":   2021,
	})

	w := httptest.NewRecorder()
	c, _ := authedContext(w, claims)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockProject.AssertExpectations(t)
}

func TestProjectHandler_Create_MissingFields(t *testing.T) {
	h := handler.NewProjectHandler(new(mocks.MockProjectService))

	body, _ := json.Marshal(map[string]interface{}{"make": "BMW"})

	w := httptest.NewRecorder()
	c, _ := authedContext(w, testClaims())
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_Create_InvalidYearRange(t *testing.T) {
	mockProject := new(mocks.MockProjectService)
	h := handler.NewProjectHandler(mockProject)

	mockProject.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("service.CreateProjectInput")).
		Return(nil, domain.ErrInvalidYearRange)

	body, _ := json.Marshal(map[string]interface{}{
		"make":             "BMW",
		"model":            "320d",
		"year_range_start": 2022,
		"year_range_end":   2018,
	})

	w := httptest.NewRecorder()
	c, _ := authedContext(w, testClaims())
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_GetByID_NotFound(t *testing.T) {
	mockProject := new(mocks.MockProjectService)
	h := handler.NewProjectHandler(mockProject)

	projectID := uuid.New()
	mockProject.On("GetByID", mock.Anything, mock.Anything, projectID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, testClaims())
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: projectID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectHandler_GetByID_ForeignProjectForbidden(t *testing.T) {
	// Full stack below the handler: a real service over a repo mock, so the
	// ownership check itself is exercised.
	repo := new(mocks.MockProjectRepo)
	h := handler.NewProjectHandler(service.NewProjectService(repo))

	projectID := uuid.New()
	repo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{
		ID:     projectID,
		UserID: uuid.New(),
		Make:   "BMW",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, testClaims())
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: projectID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "BMW")
}

func TestProjectHandler_List_IncludesStats(t *testing.T) {
	mockProject := new(mocks.MockProjectService)
	h := handler.NewProjectHandler(mockProject)

	mockProject.On("List", mock.Anything, mock.Anything).Return([]domain.ProjectWithStats{
		{
			Project:       domain.Project{Make: "BMW", Model: "320d"},
			ListingsCount: 12,
			DisplayName:   "07.03.2024.BMW.320D.19/21.ESTATE",
		},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, testClaims())
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/projects", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"listings_count":12`)
	assert.Contains(t, w.Body.String(), "07.03.2024.BMW.320D.19/21.ESTATE")
}

func TestProjectHandler_Delete_Forbidden(t *testing.T) {
	mockProject := new(mocks.MockProjectService)
	h := handler.NewProjectHandler(mockProject)

	projectID := uuid.New()
	mockProject.On("Delete", mock.Anything, mock.Anything, projectID).Return(domain.ErrForbidden)

	w := httptest.NewRecorder()
	c, _ := authedContext(w, testClaims())
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/projects/"+projectID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: projectID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProjectHandler_Update_PartialFields(t *testing.T) {
	mockProject := new(mocks.MockProjectService)
	h := handler.NewProjectHandler(mockProject)

	projectID := uuid.New()
	claims := testClaims()
	mockProject.On("Update", mock.Anything, claims, projectID, mock.MatchedBy(func(input service.UpdateProjectInput) bool {
		return input.Freename != nil && *input.Freename == "estate" && input.Make == nil
	})).Return(&domain.Project{ID: projectID, Freename: "estate"}, nil)

	body, _ := json.Marshal(map[string]string{"freename": "estate"})

	w := httptest.NewRecorder()
	c, _ := authedContext(w, claims)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/projects/"+projectID.String(), bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: projectID.String()}}

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockProject.AssertExpectations(t)
}
