package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventmart/internal/domain/user"
)

type stubStore struct {
	users map[int64]user.User
}

func (s stubStore) ByID(_ context.Context, id int64) (user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return user.User{}, errors.New("no rows")
	}
	return u, nil
}

func newTestRouter(store IdentityStore, requiredRole string) (*gin.Engine, *JWTManager) {
	gin.SetMode(gin.TestMode)
	m := newTestJWT(15)

	r := gin.New()
	g := r.Group("/", Authenticate(m, store), RequireRole(requiredRole))
	g.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})
	return r, m
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingToken(t *testing.T) {
	r, _ := newTestRouter(stubStore{}, user.RoleUser)
	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	r, _ := newTestRouter(stubStore{}, user.RoleUser)
	w := doGet(r, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateDeletedUser(t *testing.T) {
	// Valid token, but the identity is gone from the store.
	r, m := newTestRouter(stubStore{users: map[int64]user.User{}}, user.RoleUser)

	token, _, err := m.Sign(7, user.RoleUser)
	require.NoError(t, err)

	w := doGet(r, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequireRoleStrictEquality(t *testing.T) {
	store := stubStore{users: map[int64]user.User{
		1: {ID: 1, Role: user.RoleAdmin},
		2: {ID: 2, Role: user.RoleVendor},
	}}

	// Endpoint requires vendor; admin does not qualify.
	r, m := newTestRouter(store, user.RoleVendor)

	adminToken, _, err := m.Sign(1, user.RoleAdmin)
	require.NoError(t, err)
	w := doGet(r, adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	vendorToken, _, err := m.Sign(2, user.RoleVendor)
	require.NoError(t, err)
	w = doGet(r, vendorToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleComesFromStoreNotToken(t *testing.T) {
	// The store's role wins: a stale token claiming vendor for a user
	// who is (now) a shopper must not pass a vendor gate.
	store := stubStore{users: map[int64]user.User{
		3: {ID: 3, Role: user.RoleUser},
	}}
	r, m := newTestRouter(store, user.RoleVendor)

	token, _, err := m.Sign(3, user.RoleVendor)
	require.NoError(t, err)

	w := doGet(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
