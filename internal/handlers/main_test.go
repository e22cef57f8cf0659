package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/registry-dev/registry/db"
	"github.com/registry-dev/registry/internal/models"
	"github.com/registry-dev/registry/internal/router"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// one connection keeps every query on the same in-memory database
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(conn))

	return router.NewRouter(conn, []string{"http://localhost:5173"}), conn
}

// request marshals body (pass json.RawMessage for hand-built payloads, nil
// for none) and runs it through the router.
func request(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]interface{}
	decode(t, w, &body)

	msg, _ := body["error"].(string)
	return msg
}

func createProjectType(t *testing.T, conn *gorm.DB, name string) models.ProjectType {
	t.Helper()

	pt := models.ProjectType{Name: name}
	require.NoError(t, conn.Create(&pt).Error)
	return pt
}

func createPublicationType(t *testing.T, conn *gorm.DB, name string) models.PublicationType {
	t.Helper()

	pt := models.PublicationType{Name: name}
	require.NoError(t, conn.Create(&pt).Error)
	return pt
}

func createAuthor(t *testing.T, conn *gorm.DB, fullName string) models.Author {
	t.Helper()

	a := models.Author{FullName: fullName}
	require.NoError(t, conn.Create(&a).Error)
	return a
}

func raw(s string) json.RawMessage {
	return json.RawMessage(s)
}

func TestHealthCheck(t *testing.T) {
	r, _ := setup(t)

	w := request(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	decode(t, w, &body)
	require.Equal(t, "ok", body["status"])
}
