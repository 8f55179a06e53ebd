package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acg-data/bizgenius-sub001/internal/adapter/http/handlers/mocks"
	"github.com/acg-data/bizgenius-sub001/internal/adapter/http/middleware"
	appconfig "github.com/acg-data/bizgenius-sub001/internal/config"
	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/infrastructure/events"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router   *gin.Engine
	sessions *mocks.MockISessionUseCase
	costs    *mocks.MockICostUseCase
	subs     *mocks.MockISubscriptionUseCase
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	auth, err := middleware.NewAuthenticator(appconfig.Config{AuthDevAllowLocal: true})
	if err != nil {
		t.Fatalf("authenticator: %v", err)
	}
	f := routerFixture{
		sessions: mocks.NewMockISessionUseCase(ctrl),
		costs:    mocks.NewMockICostUseCase(ctrl),
		subs:     mocks.NewMockISubscriptionUseCase(ctrl),
	}
	f.router = NewRouter(Dependencies{
		Sessions:      f.sessions,
		Costs:         f.costs,
		Subscriptions: f.subs,
		Events:        events.NewBroadcaster(),
		Auth:          auth,
	})
	return f
}

func (f routerFixture) do(method, path, user, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(""))
	if user != "" {
		req.Header.Set(middleware.HeaderLocalDevUser, user)
	}
	if role != "" {
		req.Header.Set(middleware.HeaderLocalDevRole, role)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newRouterFixture(t)

	if w := f.do(http.MethodGet, "/v1/ping", "", ""); w.Code != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", w.Code)
	}
	if w := f.do(http.MethodGet, "/metrics", "", ""); w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
	if w := f.do(http.MethodPost, "/v1/webhooks/mercadopago", "", ""); w.Code != http.StatusOK {
		t.Fatalf("webhook: expected 200 (ignored), got %d", w.Code)
	}
}

func TestRouter_RequiresUser(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{"/v1/sessions", "/v1/sessions/s-1", "/v1/subscriptions/me", "/v1/admin/costs/trends"} {
		if w := f.do(http.MethodGet, path, "", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, w.Code)
		}
	}
}

func TestRouter_SessionRoutes(t *testing.T) {
	f := newRouterFixture(t)
	f.sessions.EXPECT().ListSessions(gomock.Any(), "dev-1").Return([]entities.GenerationSession{}, nil)

	w := f.do(http.MethodGet, "/v1/sessions", "dev-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %s", w.Body.String())
	}
}

func TestRouter_AdminRoutes(t *testing.T) {
	f := newRouterFixture(t)

	if w := f.do(http.MethodGet, "/v1/admin/costs/trends", "dev-1", ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	f.costs.EXPECT().GetCostTrends(gomock.Any(), 7).Return([]entities.CostTrendPoint{}, nil)
	if w := f.do(http.MethodGet, "/v1/admin/costs/trends?days=7", "dev-admin", "admin"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
