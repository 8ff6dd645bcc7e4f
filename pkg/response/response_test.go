package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/cricket-roster-service/internal/generator"
	"github.com/maxviazov/cricket-roster-service/internal/importer"
	"github.com/maxviazov/cricket-roster-service/internal/repository"
	"github.com/maxviazov/cricket-roster-service/internal/service"
	"github.com/maxviazov/cricket-roster-service/pkg/response"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name     string
		in       error
		wantCode int
		wantErr  string
	}{
		{"invalid_input", service.NewInvalidInputError([]service.FieldError{{Field: "name", Message: "bad"}}), 400, "invalid_input"},
		{"blank_team_name", &repository.DuplicateNameError{Empty: true}, 400, "invalid_input"},
		{"duplicate_name", &repository.DuplicateNameError{Name: "Team 1"}, 409, "duplicate_name"},
		{"invalid_team_size", fmt.Errorf("%w: 4", repository.ErrInvalidTeamSize), 400, "invalid_team_size"},
		{"import_format", fmt.Errorf("%w: nope", importer.ErrImportFormat), 400, "invalid_import"},
		{"not_found", repository.ErrNotFound, 404, "not_found"},
		{"pool_not_ready", service.ErrPoolNotReady, 409, "pool_not_ready"},
		{"generation", fmt.Errorf("%w: 503", generator.ErrGeneration), 502, "generation_failed"},
		{"internal", errors.New("boom"), 500, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, payload := response.MapError(tc.in)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantErr, payload.Error)
			if tc.wantErr == "invalid_input" {
				assert.NotEmpty(t, payload.FieldErrors)
			}
		})
	}
}

func TestWriteError_Aborts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	response.WriteError(c, repository.ErrNotFound)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not_found"}`, w.Body.String())
}
