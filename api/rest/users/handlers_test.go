package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/bookhub/server/bookhub/users"
	"codeberg.org/bookhub/server/internal/auth"
	"codeberg.org/bookhub/server/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Register()
}

type fakeStore struct {
	users   map[string]*users.User
	updates map[string]users.UpdateFields
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*users.User{}, updates: map[string]users.UpdateFields{}}
}

func (s *fakeStore) List(context.Context) ([]users.User, error) {
	out := []users.User{}
	for _, u := range s.users {
		copied := *u
		copied.Password = ""
		out = append(out, copied)
	}

	return out, nil
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*users.User, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, users.ErrInvalidID
	}

	u, ok := s.users[id]
	if !ok {
		return nil, users.ErrNotFound
	}

	return u, nil
}

func (s *fakeStore) FindByEmail(_ context.Context, email string) (*users.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}

	return nil, users.ErrNotFound
}

func (s *fakeStore) Create(_ context.Context, user *users.User) (string, error) {
	user.ID = primitive.NewObjectID()
	s.users[user.ID.Hex()] = user
	return user.ID.Hex(), nil
}

func (s *fakeStore) Update(_ context.Context, id string, fields users.UpdateFields) error {
	if _, ok := s.users[id]; !ok {
		return users.ErrNotFound
	}

	s.updates[id] = fields
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return users.ErrNotFound
	}

	delete(s.users, id)
	return nil
}

type fixture struct {
	store  *fakeStore
	tokens *auth.TokenService
	hasher *auth.PasswordHasher
	router *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tokens, err := auth.NewTokenService("users-test-secret")
	require.NoError(t, err)

	f := &fixture{
		store:  newFakeStore(),
		tokens: tokens,
		hasher: auth.NewPasswordHasher(bcrypt.MinCost),
		router: gin.New(),
	}

	RegisterRoutes(f.router.Group("/api"), f.store, f.hasher, tokens)
	return f
}

func (f *fixture) token(t *testing.T, role string) string {
	t.Helper()

	token, err := f.tokens.Issue(primitive.NewObjectID().Hex(), role+"@x.com", role)
	require.NoError(t, err)

	return token
}

func (f *fixture) do(method, path, body, token string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	decoded := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &decoded) //nolint:errcheck // list bodies are arrays

	return w, decoded
}

func TestUsersRoutes_RequireAdmin(t *testing.T) {
	f := newFixture(t)

	w, body := f.do(http.MethodGet, "/api/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization header missing.", body["error"])

	w, body = f.do(http.MethodGet, "/api/users", "", f.token(t, auth.RoleUser))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Insufficient permissions.", body["error"])

	w, _ = f.do(http.MethodGet, "/api/users", "", f.token(t, auth.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateUser(t *testing.T) {
	f := newFixture(t)
	admin := f.token(t, auth.RoleAdmin)

	w, body := f.do(http.MethodPost, "/api/users", `{"name":"Jane","email":"jane@x.com","password":"secret1"}`, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User created successfully.", body["message"])

	id := body["userId"].(string)
	stored := f.store.users[id]
	require.NotNil(t, stored)
	assert.Equal(t, auth.RoleUser, stored.Role)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, f.hasher.Verify("secret1", stored.Password))

	w, body = f.do(http.MethodPost, "/api/users", `{"name":"Jane","email":"jane@x.com","password":"other"}`, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists.", body["error"])

	w, body = f.do(http.MethodPost, "/api/users", `{"name":"Bob","email":"bob@x.com","password":"p","role":"root"}`, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["details"], "role must be one of: user, admin")
}

func TestGetUser_HidesPassword(t *testing.T) {
	f := newFixture(t)
	admin := f.token(t, auth.RoleAdmin)

	id, err := f.store.Create(context.Background(), &users.User{Name: "Jane", Email: "jane@x.com", Password: "$2a$04$hash", Role: "user"})
	require.NoError(t, err)

	w, body := f.do(http.MethodGet, "/api/users/"+id, "", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jane", body["name"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, w.Body.String(), "$2a$04$hash")

	w, body = f.do(http.MethodGet, "/api/users/nope", "", admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid user ID format.", body["error"])

	w, body = f.do(http.MethodGet, "/api/users/"+primitive.NewObjectID().Hex(), "", admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found.", body["error"])
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	admin := f.token(t, auth.RoleAdmin)

	id, err := f.store.Create(context.Background(), &users.User{Name: "Jane", Email: "jane@x.com", Role: "user"})
	require.NoError(t, err)

	w, body := f.do(http.MethodPut, "/api/users/"+id, `{"role":"admin","password":"newpass"}`, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User updated successfully.", body["message"])

	fields := f.store.updates[id]
	require.NotNil(t, fields.Role)
	assert.Equal(t, "admin", *fields.Role)
	require.NotNil(t, fields.Password)
	assert.True(t, f.hasher.Verify("newpass", *fields.Password))
	assert.Nil(t, fields.Name)

	w, body = f.do(http.MethodPut, "/api/users/"+id, `{}`, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No valid fields provided.", body["error"])

	w, body = f.do(http.MethodPut, "/api/users/bad", `{"name":"X"}`, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid user ID format.", body["error"])
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)
	admin := f.token(t, auth.RoleAdmin)

	id, err := f.store.Create(context.Background(), &users.User{Name: "Jane", Email: "jane@x.com", Role: "user"})
	require.NoError(t, err)

	w, body := f.do(http.MethodDelete, "/api/users/"+id, "", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted successfully.", body["message"])

	w, _ = f.do(http.MethodDelete, "/api/users/"+id, "", admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
