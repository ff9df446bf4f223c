package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

type registerBody struct {
	Username string `json:"username" binding:"required,min=3,username"`
	Email    string `json:"email" binding:"required,email"`
	Comment  string `json:"comment" binding:"omitempty,notblank"`
}

func TestBindJSON_ReportsJSONFieldNames(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/", `{"username":"a b","email":"nope"}`)

	var body registerBody
	err := BindJSON(c, &body)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "username may contain only letters")
	assert.Contains(t, appErr.Details, "email must be a valid email address")
}

func TestBindJSON_RejectsBlankText(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/", `{"username":"alice","email":"a@example.com","comment":"   "}`)

	var body registerBody
	err := BindJSON(c, &body)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Details, "comment is required")
}

func TestBindJSON_MalformedBody(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/", `{`)

	var body registerBody
	err := BindJSON(c, &body)
	assert.True(t, errors.IsValidationError(err))
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
	}{
		{"app error keeps type", errors.NewExpiredError("link expired"), http.StatusGone, "expired"},
		{"forbidden", errors.NewForbiddenError("denied"), http.StatusForbidden, "forbidden"},
		{"plain error hidden", assert.AnError, http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(http.MethodGet, "/", "")
			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantType, resp.Error.Type)
		})
	}
}

func TestErrorResponseWithData_KeepsPayload(t *testing.T) {
	c, w := newContext(http.MethodPost, "/", "")
	ErrorResponseWithData(c, errors.NewMailDispatchError("could not send"), gin.H{"id": 7})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
}

func TestPagination(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/?page=3&page_size=500", "")
	p := ParsePagination(c)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PageSize)
	assert.Equal(t, 200, p.Offset())

	c, _ = newContext(http.MethodGet, "/?page=-1", "")
	p = ParsePagination(c)
	assert.Equal(t, Pagination{Page: 1, PageSize: 10}, p)

	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 3, TotalPages(21, 10))
}

func TestParseIDParam(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/", "")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, err := ParseIDParam(c, "id", "ticket")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	c.Params = gin.Params{{Key: "id", Value: "0"}}
	_, err = ParseIDParam(c, "id", "ticket")
	assert.True(t, errors.IsValidationError(err))
}

func TestAccessTokenCookie(t *testing.T) {
	cfg := config.CookieConfig{Path: "/", SameSite: "Strict"}

	c, w := newContext(http.MethodPost, "/", "")
	SetAccessTokenCookie(c, cfg, "tok", 3600)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=tok")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "SameSite=Strict")

	c, w = newContext(http.MethodPost, "/", "")
	ClearAccessTokenCookie(c, cfg)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}
