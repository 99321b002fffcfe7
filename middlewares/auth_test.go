// file: middlewares/auth_test.go
package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"DevOlympus/models"
	"DevOlympus/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	authed := r.Group("/", JWTAuthMiddleware())
	authed.GET("/me", func(c *gin.Context) {
		utils.Success(c, "ok", gin.H{"user_id": c.GetUint("user_id")})
	})
	authed.GET("/admin", AdminAuthMiddleware(), func(c *gin.Context) {
		utils.Success(c, "ok", nil)
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path, token string) utils.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	resp := doRequest(t, testRouter(), "/me", "")
	assert.Equal(t, 4001, resp.Code)
}

func TestJWTAuthMiddleware_BadToken(t *testing.T) {
	resp := doRequest(t, testRouter(), "/me", "definitely-not-a-jwt")
	assert.Equal(t, 4003, resp.Code)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	token, err := utils.GenerateToken(models.User{ID: 7, Email: "rohan@college.edu"})
	require.NoError(t, err)

	resp := doRequest(t, testRouter(), "/me", token)
	assert.Equal(t, 0, resp.Code)
}

func TestAdminAuthMiddleware(t *testing.T) {
	r := testRouter()

	userToken, err := utils.GenerateToken(models.User{ID: 7, Email: "rohan@college.edu"})
	require.NoError(t, err)
	resp := doRequest(t, r, "/admin", userToken)
	assert.Equal(t, 4003, resp.Code)

	adminToken, err := utils.GenerateToken(models.User{ID: 1, Email: "admin@devolympus.in", IsAdmin: true})
	require.NoError(t, err)
	resp = doRequest(t, r, "/admin", adminToken)
	assert.Equal(t, 0, resp.Code)
}
