package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/recipe-api/internal/database"
	"github.com/yukikurage/recipe-api/internal/password"
	"github.com/yukikurage/recipe-api/internal/repository"
	"github.com/yukikurage/recipe-api/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	t             *testing.T
	db            *gorm.DB
	router        *gin.Engine
	authService   *services.AuthService
	recipeService *services.RecipeService
}

func setupTestEnv(t *testing.T, generator services.RecipeGenerator) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenInMemory()
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	authService := services.NewAuthService(userRepo, password.NewBcryptHasher(bcrypt.MinCost), nil)
	recipeService := services.NewRecipeService(recipeRepo, userRepo, generator)

	router := NewRouter(RouterDeps{
		AuthService:   authService,
		RecipeService: recipeService,
		SessionStore:  cookie.NewStore([]byte("secret")),
	})

	return &testEnv{
		t:             t,
		db:            db,
		router:        router,
		authService:   authService,
		recipeService: recipeService,
	}
}

// client replays the session cookie between requests like a browser would.
type client struct {
	env     *testEnv
	cookies []*http.Cookie
}

func (env *testEnv) newClient() *client {
	return &client{env: env}
}

func (cl *client) do(method, path string, payload any) *httptest.ResponseRecorder {
	cl.env.t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(cl.env.t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	cl.env.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		cl.cookies = set
	}
	return w
}

// signup registers username and keeps the resulting session
func (cl *client) signup(username, secret string) uint64 {
	cl.env.t.Helper()

	w := cl.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"username": username,
		"password": secret,
	})
	require.Equal(cl.env.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID uint64 `json:"id"`
	}
	require.NoError(cl.env.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
