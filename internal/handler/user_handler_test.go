package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/models"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/service"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	out := []models.User{}
	for _, u := range s.users {
		if u.Active {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok || !u.Active {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (s *stubUserRepo) FindByIDAnyState(ctx context.Context, id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email && u.Active {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email && u.ID != excludeID && u.Active {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserRepo) Search(ctx context.Context, term string, filter models.UserFilter) ([]models.User, error) {
	return s.List(ctx, filter)
}

func (s *stubUserRepo) TopWalkers(ctx context.Context, minRating float64, limit *int) ([]models.User, error) {
	return []models.User{}, nil
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = "generated"
	}
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) Update(ctx context.Context, id string, update models.UserUpdate) error {
	return nil
}

func (s *stubUserRepo) SoftDelete(ctx context.Context, id string) error {
	if u, ok := s.users[id]; ok {
		u.Active = false
	}
	return nil
}

func (s *stubUserRepo) HardDelete(ctx context.Context, id string) error {
	delete(s.users, id)
	return nil
}

func (s *stubUserRepo) Dogs(ctx context.Context, ownerID string) ([]models.Dog, error) {
	return []models.Dog{}, nil
}

func (s *stubUserRepo) Stats(ctx context.Context, ownerID string) (*models.UserStats, error) {
	return &models.UserStats{}, nil
}

func newUserRouter(repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewUserService(repo, nil, 0, nil, nil, nil)
	h := NewUserHandler(svc)
	r := gin.New()
	h.RegisterRoutes(r.Group("/api/users"))
	return r
}

func TestUserHandlerListEnvelope(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Name: "Ana", Email: "ana@x.io", Role: models.RoleOwner, Active: true},
	}}
	r := newUserRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 1, body["count"])
}

func TestUserHandlerRejectsBadBoolParam(t *testing.T) {
	r := newUserRouter(&stubUserRepo{users: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users?is_active=maybe", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestUserHandlerGetMissingUser(t *testing.T) {
	r := newUserRouter(&stubUserRepo{users: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandlerCreate(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{}}
	r := newUserRouter(repo)

	payload := `{"name":"Ana","email":"ana@x.io","role":"owner"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User created successfully", body["message"])
}

func TestUserHandlerCreateDuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Email: "ana@x.io", Active: true},
	}}
	r := newUserRouter(repo)

	payload := `{"name":"Ana","email":"ana@x.io","role":"owner"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserHandlerSoftDeleteThenGet(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Name: "Ana", Email: "ana@x.io", Role: models.RoleOwner, Active: true},
	}}
	r := newUserRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/u1", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/users/u1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
