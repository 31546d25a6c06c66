package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T, mw ...ginext.HandlerFunc) http.Handler {
	t.Helper()

	r := ginext.New("test")
	r.Use(mw...)
	r.GET("/whoami", func(c *ginext.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, ginext.H{"role": actor.Role, "id": actor.ID})
	})
	return r
}

func TestAuth_BearerHeader(t *testing.T) {
	r := setupRouter(t, Auth(testSecret))
	token, err := IssueToken(testSecret, domain.Actor{Role: domain.RoleCustomer, ID: "cust-1"}, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"customer","id":"cust-1"}`, w.Body.String())
}

func TestAuth_QueryToken(t *testing.T) {
	r := setupRouter(t, Auth(testSecret))
	token, err := IssueToken(testSecret, domain.Actor{Role: domain.RolePartner, ID: "barber-1"}, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami?token="+token, nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_Rejects(t *testing.T) {
	expired, err := IssueToken(testSecret, domain.Actor{Role: domain.RoleCustomer, ID: "cust-1"}, -time.Minute)
	require.NoError(t, err)
	foreign, err := IssueToken("other-secret", domain.Actor{Role: domain.RoleCustomer, ID: "cust-1"}, time.Hour)
	require.NoError(t, err)
	system, err := IssueToken(testSecret, domain.SystemActor, time.Hour)
	require.NoError(t, err)

	cases := map[string]string{
		"missing":      "",
		"bad format":   "Token abc",
		"expired":      "Bearer " + expired,
		"wrong secret": "Bearer " + foreign,
		"system role":  "Bearer " + system,
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			r := setupRouter(t, Auth(testSecret))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := setupRouter(t,
		WithActor(domain.Actor{Role: domain.RoleCustomer, ID: "cust-1"}),
		RequireRole(domain.RoleAdmin),
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestID_Propagates(t *testing.T) {
	r := setupRouter(t, RequestID(), WithActor(domain.Actor{Role: domain.RoleAdmin, ID: "adm"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(requestIDHeader, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(requestIDHeader))
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	r := ginext.New("test")
	r.Use(Recovery(log))
	r.POST("/api/bookings/:id/transitions", func(c *ginext.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bookings/bk-1/transitions", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
