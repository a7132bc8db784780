package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"github.com/be1500616/zergoqrf/internal/audit"
	"github.com/be1500616/zergoqrf/internal/auth/handler"
	"github.com/be1500616/zergoqrf/internal/auth/identity"
	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/internal/auth/service"
	"github.com/be1500616/zergoqrf/internal/auth/store/revocation"
	"github.com/be1500616/zergoqrf/internal/auth/store/session"
	jwttoken "github.com/be1500616/zergoqrf/internal/jwt_token"
	"github.com/be1500616/zergoqrf/internal/restaurant"
)

const (
	jwtSecret    = "integration-secret"
	userID       = "550e8400-e29b-41d4-a716-446655440000"
	restaurantID = "7d0c8a3e-4b7f-4c55-9a44-3c1d2b6f0e11"
)

// FlowSuite drives the HTTP surface with real stores and a fake identity
// provider that issues tokens signed with the shared secret.
type FlowSuite struct {
	suite.Suite
	provider *httptest.Server
	router   chi.Router
	audit    *audit.InMemoryStore
	jwt      *jwttoken.JWTService
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowSuite))
}

func (s *FlowSuite) SetupTest() {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.jwt = jwttoken.NewJWTService(jwtSecret, "", jwttoken.DefaultAudience, time.Hour)
	s.provider = httptest.NewServer(s.fakeProvider())

	idp := identity.New(s.provider.URL, "anon", "service", identity.WithLogger(log))
	tokens := jwttoken.NewRepository(s.jwt, revocation.NewInMemoryList(), log)
	restaurants := restaurant.NewInMemoryStore(&restaurant.Restaurant{
		ID: restaurantID, Name: "Trattoria", Code: "TRATT01", IsActive: true,
	})

	s.audit = audit.NewInMemoryStore()
	publisher := audit.NewPublisher(s.audit)
	s.T().Cleanup(publisher.Close)

	svc := service.New(idp, session.NewInMemoryStore(), tokens, idp,
		service.WithLogger(log),
		service.WithAuditPublisher(publisher),
		service.WithRestaurantDirectory(restaurants),
	)

	s.router = chi.NewRouter()
	h := handler.New(svc, nil, "", log)
	h.Register(s.router)
}

func (s *FlowSuite) TearDownTest() {
	s.provider.Close()
}

func (s *FlowSuite) fakeProvider() http.Handler {
	mux := http.NewServeMux()
	user := map[string]any{
		"id":    userID,
		"email": "manager@trattoria.test",
		"app_metadata": map[string]any{
			"role":          models.RoleManager,
			"restaurant_id": restaurantID,
		},
		"user_metadata": map[string]any{"name": "Giulia"},
		"created_at":    "2025-01-01T00:00:00Z",
		"updated_at":    "2025-01-01T00:00:00Z",
	}
	mux.HandleFunc("POST /auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		token, err := s.jwt.GenerateAccessToken(r.Context(), jwttoken.MintRequest{
			UserID:       userID,
			Email:        "manager@trattoria.test",
			Role:         models.RoleManager,
			RestaurantID: restaurantID,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{
			"access_token":  token,
			"token_type":    "bearer",
			"expires_in":    3600,
			"refresh_token": "refresh-token-value",
			"user":          user,
		})
	})
	mux.HandleFunc("GET /auth/v1/admin/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, user)
	})
	mux.HandleFunc("POST /auth/v1/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func (s *FlowSuite) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *FlowSuite) decode(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func (s *FlowSuite) TestStaffSignInThroughSignOut() {
	rec := s.do(http.MethodPost, "/auth/signin/email",
		map[string]string{"email": "Manager@Trattoria.test", "password": "correct-horse"}, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var signedIn models.AuthResponse
	s.decode(rec, &signedIn)
	s.Equal(models.RoleManager, signedIn.User.Role)
	bearer := map[string]string{"Authorization": "Bearer " + signedIn.AccessToken}

	rec = s.do(http.MethodGet, "/auth/me", nil, bearer)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var profile models.UserProfileResponse
	s.decode(rec, &profile)
	s.Equal(userID, profile.ID)
	s.Require().NotNil(profile.Name)
	s.Equal("Giulia", *profile.Name)

	rec = s.do(http.MethodGet, "/restaurants/"+restaurantID+"/context", nil, bearer)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/restaurants/2b1f4e0a-9f3c-4d1e-8c55-111111111111/context", nil, bearer)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/auth/signout", nil, bearer)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/auth/me", nil, bearer)
	s.Equal(http.StatusUnauthorized, rec.Code, "revoked token must not authenticate")
}

func (s *FlowSuite) TestGuestEntersByRestaurantCode() {
	rec := s.do(http.MethodPost, "/auth/validate-restaurant-code", map[string]string{"code": " tratt01 "}, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var entered models.RestaurantCodeResponse
	s.decode(rec, &entered)
	s.True(entered.Valid)
	s.Equal(restaurantID, entered.Restaurant.RestaurantID)
	s.NotEmpty(entered.SessionToken)

	guest := map[string]string{"X-Session-Token": entered.SessionToken}
	rec = s.do(http.MethodGet, "/restaurants/"+restaurantID+"/context", nil, guest)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var scoped models.RestaurantContextResponse
	s.decode(rec, &scoped)
	s.True(scoped.IsAnonymous)
	s.Equal(models.RoleAnonymous, scoped.Role)

	rec = s.do(http.MethodPost, "/auth/validate-restaurant-code", map[string]string{"code": "NOPE0000"}, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *FlowSuite) TestGuestSessionLifecycle() {
	rec := s.do(http.MethodPost, "/auth/sessions/anonymous",
		map[string]string{"restaurant_id": restaurantID, "table_id": "0f8e6a52-3c1b-4f7d-9e2a-5b6c7d8e9f01"}, nil)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created models.AnonymousSessionResponse
	s.decode(rec, &created)

	holder := map[string]string{"X-Session-Token": created.SessionToken}

	rec = s.do(http.MethodDelete, "/auth/sessions/anonymous/"+created.SessionID, nil, nil)
	s.Equal(http.StatusUnauthorized, rec.Code, "session ids alone must not end a session")

	rec = s.do(http.MethodPost, "/auth/sessions/anonymous",
		map[string]string{"restaurant_id": restaurantID}, nil)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var neighbour models.AnonymousSessionResponse
	s.decode(rec, &neighbour)

	rec = s.do(http.MethodDelete, "/auth/sessions/anonymous/"+created.SessionID, nil,
		map[string]string{"X-Session-Token": neighbour.SessionToken})
	s.Equal(http.StatusForbidden, rec.Code, "another guest must not end the session")

	rec = s.do(http.MethodGet, "/auth/sessions/anonymous/"+created.SessionID, nil, holder)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.NotContains(rec.Body.String(), created.SessionToken)

	rec = s.do(http.MethodPost, "/auth/sessions/anonymous/"+created.SessionID+"/extend",
		map[string]int{"extend_hours": 2}, holder)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var extended models.AnonymousSessionResponse
	s.decode(rec, &extended)
	s.NotEqual(created.ExpiresAt, extended.ExpiresAt)

	rec = s.do(http.MethodDelete, "/auth/sessions/anonymous/"+created.SessionID, nil, holder)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	// The token died with the session.
	rec = s.do(http.MethodGet, "/auth/sessions/anonymous/"+created.SessionID, nil, holder)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *FlowSuite) TestAuditTrailRecordsMaskedSubjects() {
	rec := s.do(http.MethodPost, "/auth/signin/email",
		map[string]string{"email": "manager@trattoria.test", "password": "correct-horse"}, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	s.Eventually(func() bool {
		events, err := s.audit.ListByUser(context.Background(), userID)
		return err == nil && len(events) > 0
	}, time.Second, 10*time.Millisecond)

	events, err := s.audit.ListByUser(context.Background(), userID)
	s.Require().NoError(err)
	s.Equal(string(audit.EventSignedIn), events[0].Action)
	s.NotContains(events[0].Subject, "manager@trattoria.test")
}
