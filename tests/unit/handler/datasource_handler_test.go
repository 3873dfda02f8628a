package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bananadb/internal/domain"
	"bananadb/internal/handler"
	"bananadb/mocks"
)

func TestDataSourceHandler_List(t *testing.T) {
	mockDS := new(mocks.MockDataSourceService)
	h := handler.NewDataSourceHandler(mockDS)

	mockDS.On("List", mock.Anything).Return([]domain.DataSource{
		{ID: 1, Name: "mobile.de", Country: "DE"},
		{ID: 2, Name: "autoscout24", Country: "IT"},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasources", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mobile.de")
}

func TestDataSourceHandler_Create_Success(t *testing.T) {
	mockDS := new(mocks.MockDataSourceService)
	h := handler.NewDataSourceHandler(mockDS)

	mockDS.On("Create", mock.Anything, mock.AnythingOfType("service.CreateDataSourceInput")).
		Return(&domain.DataSource{ID: 3, Name: "blocket", Country: "SE"}, nil)

	body, _ := json.Marshal(map[string]string{"name": "blocket", "country": "SE"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/admin/datasources", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDataSourceHandler_Create_MissingCountry(t *testing.T) {
	h := handler.NewDataSourceHandler(new(mocks.MockDataSourceService))

	body, _ := json.Marshal(map[string]string{"name": "blocket"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/admin/datasources", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDataSourceHandler_Delete_InvalidID(t *testing.T) {
	h := handler.NewDataSourceHandler(new(mocks.MockDataSourceService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/admin/datasources/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDataSourceHandler_Delete_Success(t *testing.T) {
	mockDS := new(mocks.MockDataSourceService)
	h := handler.NewDataSourceHandler(mockDS)

	mockDS.On("Delete", mock.Anything, 7).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/admin/datasources/7", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockDS.AssertExpectations(t)
}
