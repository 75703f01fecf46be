// File: internal/uistate/handler_test.go
package uistate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"creator_support_backend/internal/cause"
	"creator_support_backend/internal/config"
	"creator_support_backend/internal/creatorpage"
	"creator_support_backend/internal/datastore"
	"creator_support_backend/internal/firebase"
	"creator_support_backend/internal/handle"
	"creator_support_backend/internal/middleware"
	"creator_support_backend/internal/onboarding"
	"creator_support_backend/internal/platform/database/sqlitetest"
	"creator_support_backend/internal/profile"
	"creator_support_backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const providerURL = "https://connect.stripe.test/setup"

type testEnv struct {
	router  *gin.Engine
	store   *Store
	handler *Handler
	data    datastore.Store
}

func setupHandlerTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := sqlitetest.Open(t)

	log := zap.NewNop()
	ds := datastore.NewStore(profile.NewGORMRepository(db), creatorpage.NewGORMRepository(db), log)
	pages := creatorpage.NewService(creatorpage.NewGORMRepository(db), log)
	causes := cause.NewService(cause.NewGORMRepository(db), log)
	onboardingSvc := onboarding.NewService(ds, handle.NewAllocator(handle.DefaultMaxCandidates), nil, log)

	auth, err := firebase.NewAuthenticator(&config.Config{GinMode: "test"}, log)
	require.NoError(t, err)

	store := NewStore(StoreConfig{TTL: time.Hour, CleanupInterval: time.Hour, PayoutProviderURL: providerURL})
	h := NewHandler(store, onboardingSvc, pages, causes, auth, log)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"), middleware.AuthMiddleware(auth, ds, log))
	return &testEnv{router: r, store: store, handler: h, data: ds}
}

func (env *testEnv) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	out := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return d
}

func onboardCreator(t *testing.T, env *testEnv, token, title string) map[string]interface{} {
	t.Helper()
	code, _ := env.do(t, http.MethodPost, "/onboarding/confirm", token, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = env.do(t, http.MethodPut, "/onboarding/basic-info", token, map[string]interface{}{"page_title": title, "support_price": "7.50"})
	require.Equal(t, http.StatusOK, code)
	code, body := env.do(t, http.MethodPost, "/onboarding/submit", token, nil)
	require.Equal(t, http.StatusCreated, code, body)
	return data(t, body)
}

func TestHandler_RequiresAuth(t *testing.T) {
	env := setupHandlerTest(t)
	code, body := env.do(t, http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestHandler_GetMe(t *testing.T) {
	env := setupHandlerTest(t)
	code, body := env.do(t, http.MethodGet, "/me", "u1|maria@example.com", nil)
	require.Equal(t, http.StatusOK, code)
	d := data(t, body)
	user := d["user"].(map[string]interface{})
	assert.Equal(t, "u1", user["user_id"])
	assert.Equal(t, "maria@example.com", user["email"])
	assert.Nil(t, d["profile"])
}

func TestHandler_OnboardingSubmit(t *testing.T) {
	env := setupHandlerTest(t)
	token := "u1|maria@example.com"

	code, body := env.do(t, http.MethodPost, "/onboarding/category", token, map[string]string{"category": "animals"})
	assert.Equal(t, http.StatusConflict, code, "category cannot change before the form is shown")
	assert.Equal(t, "INVALID_STEP", body["code"])

	code, _ = env.do(t, http.MethodPost, "/onboarding/confirm", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, body = env.do(t, http.MethodPost, "/onboarding/submit", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "PAGE_TITLE_REQUIRED", body["code"])

	code, body = env.do(t, http.MethodPost, "/onboarding/category", token, map[string]string{"category": "animals"})
	require.Equal(t, http.StatusOK, code)
	form := data(t, body)["onboarding"].(map[string]interface{})["form"].(map[string]interface{})
	assert.Equal(t, "animals", form["category"])
	assert.Equal(t, "Wildlife Conservation", form["subcategory"])

	code, _ = env.do(t, http.MethodPost, "/onboarding/subcategory", token, map[string]string{"subcategory": "Ocean Cleanup"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	code, _ = env.do(t, http.MethodPost, "/onboarding/subcategory", token, map[string]string{"subcategory": "Animal Rescue"})
	require.Equal(t, http.StatusOK, code)

	code, body = env.do(t, http.MethodPut, "/onboarding/basic-info", token, map[string]interface{}{"page_title": "Maria's Rescue"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, data(t, body)["onboarding"].(map[string]interface{})["can_advance"])

	code, body = env.do(t, http.MethodPost, "/onboarding/submit", token, nil)
	require.Equal(t, http.StatusCreated, code, body)
	d := data(t, body)
	assert.Equal(t, "maria", d["handle"])
	assert.Equal(t, "probe", d["handle_source"])
	assert.Equal(t, "dashboard", d["navigation"].(map[string]interface{})["type"])
	assert.Equal(t, "complete", d["onboarding"].(map[string]interface{})["step"])
	page := d["page"].(map[string]interface{})
	assert.Equal(t, "Maria's Rescue", page["title"])
	assert.Equal(t, "Animals", page["category"])

	code, body = env.do(t, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	prof := data(t, body)["profile"].(map[string]interface{})
	assert.Equal(t, "maria", prof["handle"])
	assert.Equal(t, true, prof["is_creator"])
}

func TestHandler_OnboardingSubmitOutlivesClientDisconnect(t *testing.T) {
	env := setupHandlerTest(t)
	token := "u1|sam@example.com"
	code, _ := env.do(t, http.MethodPost, "/onboarding/confirm", token, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = env.do(t, http.MethodPut, "/onboarding/basic-info", token, map[string]interface{}{"page_title": "Sam"})
	require.Equal(t, http.StatusOK, code)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/submit", nil).WithContext(ctx)
	session.SetGin(c, session.New(&session.Identity{UserID: "u1", Email: "sam@example.com"}, env.data))

	env.handler.submitOnboarding(c)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	page, err := env.data.FindCreatorPageByUserID(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "sam", page.Handle)
}

func TestHandler_OnboardingBackFromWelcomeGoesHome(t *testing.T) {
	env := setupHandlerTest(t)
	token := "u1"

	code, _ := env.do(t, http.MethodPost, "/navigation", token, map[string]string{"type": "profile-setup"})
	require.Equal(t, http.StatusOK, code)

	code, _ = env.do(t, http.MethodPost, "/onboarding/confirm", token, nil)
	require.Equal(t, http.StatusOK, code)
	code, body := env.do(t, http.MethodPost, "/onboarding/back", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "welcome", data(t, body)["onboarding"].(map[string]interface{})["step"])
	assert.Equal(t, "profile-setup", data(t, body)["navigation"].(map[string]interface{})["type"])

	code, body = env.do(t, http.MethodPost, "/onboarding/back", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "home", data(t, body)["navigation"].(map[string]interface{})["type"])
}

func TestHandler_DashboardResumesExistingCreator(t *testing.T) {
	env := setupHandlerTest(t)
	token := "u1|maria@example.com"
	onboardCreator(t, env, token, "Maria")

	// A fresh state entry has to learn from storage that the page exists.
	env.store.Drop("u1")

	code, body := env.do(t, http.MethodGet, "/dashboard", token, nil)
	require.Equal(t, http.StatusOK, code)
	d := data(t, body)
	assert.Equal(t, "complete", d["onboarding"].(map[string]interface{})["step"])
	assert.Equal(t, "maria", d["page"].(map[string]interface{})["handle"])
	assert.Equal(t, "initial", d["payout"].(map[string]interface{})["step"])
	assert.Empty(t, d["causes"])
}

func TestHandler_DashboardWithoutPage(t *testing.T) {
	env := setupHandlerTest(t)
	code, body := env.do(t, http.MethodGet, "/dashboard", "u9", nil)
	require.Equal(t, http.StatusOK, code)
	d := data(t, body)
	assert.Nil(t, d["page"])
	assert.Equal(t, "welcome", d["onboarding"].(map[string]interface{})["step"])
}

func TestHandler_AccountsHaveIndependentState(t *testing.T) {
	env := setupHandlerTest(t)

	code, _ := env.do(t, http.MethodPost, "/onboarding/confirm", "a", nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = env.do(t, http.MethodPost, "/navigation", "a", map[string]string{"type": "explore"})
	require.Equal(t, http.StatusOK, code)

	code, body := env.do(t, http.MethodGet, "/onboarding", "b", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "welcome", data(t, body)["onboarding"].(map[string]interface{})["step"])
	assert.Equal(t, "home", data(t, body)["navigation"].(map[string]interface{})["type"])
}

func TestHandler_NavigateRejectsUnknownPage(t *testing.T) {
	env := setupHandlerTest(t)
	code, body := env.do(t, http.MethodPost, "/navigation", "u1", map[string]string{"type": "settings"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "BAD_REQUEST", body["code"])
}

func TestHandler_CreatorTabs(t *testing.T) {
	env := setupHandlerTest(t)
	created := onboardCreator(t, env, "u1|maria@example.com", "Maria's Page")
	pageID := created["page"].(map[string]interface{})["id"]

	viewer := "u2"
	code, _ := env.do(t, http.MethodPost, "/navigation/creator-tab", viewer, map[string]string{"tab": "shop"})
	assert.Equal(t, http.StatusConflict, code, "no creator in view")

	code, _ = env.do(t, http.MethodPost, "/navigation", viewer, map[string]string{"type": "creator", "creator_id": "maria"})
	require.Equal(t, http.StatusOK, code)

	code, body := env.do(t, http.MethodPost, "/navigation/creator-tab", viewer, map[string]string{"tab": "shop"})
	require.Equal(t, http.StatusOK, code, body)
	shop := data(t, body)
	assert.Equal(t, "shop", shop["type"])
	assert.Equal(t, "maria", shop["creator_id"])
	assert.Equal(t, "Maria's Page", shop["creator_name"])
	assert.Equal(t, pageID, shop["creator_page_id"])

	code, body = env.do(t, http.MethodPost, "/navigation/creator-tab", viewer, map[string]string{"tab": "membership"})
	require.Equal(t, http.StatusOK, code)
	membership := data(t, body)
	assert.Equal(t, "membership", membership["type"])
	assert.Equal(t, pageID, membership["creator_page_id"])

	code, body = env.do(t, http.MethodPost, "/navigation/creator-tab", viewer, map[string]string{"tab": "home"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "creator", data(t, body)["type"])
	assert.Equal(t, "maria", data(t, body)["creator_id"])

	code, _ = env.do(t, http.MethodPost, "/navigation/creator-tab", viewer, map[string]string{"tab": "about"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestHandler_PayoutFlow(t *testing.T) {
	env := setupHandlerTest(t)
	token := "u1"

	code, body := env.do(t, http.MethodGet, "/payout/countries?q=united", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, data(t, body)["all"], 3)

	code, _ = env.do(t, http.MethodPost, "/payout/next", token, nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = env.do(t, http.MethodPost, "/payout/begin", token, nil)
	require.Equal(t, http.StatusOK, code)
	code, body = env.do(t, http.MethodPost, "/payout/next", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "COUNTRY_REQUIRED", body["code"])

	code, body = env.do(t, http.MethodPost, "/payout/country", token, map[string]string{"country": "Atlantis"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "UNSUPPORTED_COUNTRY", body["code"])

	code, _ = env.do(t, http.MethodPost, "/payout/country", token, map[string]string{"country": "Canada"})
	require.Equal(t, http.StatusOK, code)
	code, _ = env.do(t, http.MethodPost, "/payout/next", token, nil)
	require.Equal(t, http.StatusOK, code)
	code, body = env.do(t, http.MethodPost, "/payout/continue", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "stripe", data(t, body)["step"])

	code, body = env.do(t, http.MethodPost, "/payout/handoff", token, nil)
	require.Equal(t, http.StatusOK, code)
	d := data(t, body)
	assert.Equal(t, providerURL, d["url"])
	assert.Equal(t, "initial", d["payout"].(map[string]interface{})["step"])
}

func TestHandler_SignOutDropsState(t *testing.T) {
	env := setupHandlerTest(t)
	token := "u1"

	code, _ := env.do(t, http.MethodPost, "/navigation", token, map[string]string{"type": "fundraise"})
	require.Equal(t, http.StatusOK, code)

	code, _ = env.do(t, http.MethodPost, "/me/sign-out", token, nil)
	require.Equal(t, http.StatusNoContent, code)

	code, body := env.do(t, http.MethodGet, "/navigation", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "home", data(t, body)["type"])
}
