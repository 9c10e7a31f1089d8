package app_error

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatus(t *testing.T) {
	invalid := errors.New("invalid")
	assert.Equal(t, http.StatusBadRequest, Status(BadRequest(invalid)))
	assert.Equal(t, http.StatusBadRequest, Status(fmt.Errorf("creating question: %w", BadRequest(invalid))))
	assert.Equal(t, http.StatusNotFound, Status(fmt.Errorf("form: %w", gorm.ErrRecordNotFound)))
	assert.Equal(t, http.StatusNotFound, Status(NotFound(invalid)))
	assert.Equal(t, http.StatusInternalServerError, Status(invalid))
	assert.ErrorIs(t, BadRequest(invalid), invalid)
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Respond(c, BadRequest(errors.New("question type is required")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"question type is required"}`, w.Body.String())
}
