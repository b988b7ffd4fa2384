package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devfolio/core/internal/database"
	"github.com/devfolio/core/internal/models"
	"github.com/devfolio/core/internal/pkg/jwt"
	"github.com/devfolio/core/internal/pkg/repo"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminStore struct {
	admin *models.Admin
	err   error
}

func (f *fakeAdminStore) FindOne(_ context.Context, filter bson.M) (*models.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.admin != nil && filter["username"] == f.admin.Username {
		return f.admin, nil
	}
	return nil, repo.ErrNotFound
}

func storedAdmin(t *testing.T, username, password string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Admin{
		Base:         models.Base{ID: primitive.NewObjectID()},
		Username:     username,
		PasswordHash: string(hash),
		Role:         "admin",
	}
}

func newLoginRouter(store AdminStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(NewService(store)).RegisterRoutes(api)
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	jwt.SetSecret("auth-test-secret")
	admin := storedAdmin(t, "admin", "hunter2")
	r := newLoginRouter(&fakeAdminStore{admin: admin})

	w := postLogin(r, `{"username":"admin","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body loginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	claims, err := jwt.Parse(body.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.Hex(), claims.Subject)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	jwt.SetSecret("auth-test-secret")
	r := newLoginRouter(&fakeAdminStore{admin: storedAdmin(t, "admin", "hunter2")})

	w := postLogin(r, `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"unauthorized"}`, w.Body.String())
}

func TestLogin_UnknownUser(t *testing.T) {
	jwt.SetSecret("auth-test-secret")
	r := newLoginRouter(&fakeAdminStore{admin: storedAdmin(t, "admin", "hunter2")})

	w := postLogin(r, `{"username":"ghost","password":"hunter2"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"unauthorized"}`, w.Body.String())
}

func TestLogin_WrongPasswordAndUnknownUserIndistinguishable(t *testing.T) {
	jwt.SetSecret("auth-test-secret")
	r := newLoginRouter(&fakeAdminStore{admin: storedAdmin(t, "admin", "hunter2")})

	wrongPassword := postLogin(r, `{"username":"admin","password":"wrong"}`)
	unknownUser := postLogin(r, `{"username":"ghost","password":"hunter2"}`)
	assert.Equal(t, wrongPassword.Code, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	r := newLoginRouter(&fakeAdminStore{})
	for _, body := range []string{
		`{}`,
		`{"username":"admin"}`,
		`{"password":"hunter2"}`,
		`not json`,
	} {
		w := postLogin(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestLogin_DatabaseUnreachable(t *testing.T) {
	r := newLoginRouter(&fakeAdminStore{err: database.ErrUnreachable})

	w := postLogin(r, `{"username":"admin","password":"hunter2"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "database connection failed")
}
