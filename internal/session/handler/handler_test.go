package sessionhandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/pinfinds-backend/internal/location"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
	"github.com/xw1nchester/pinfinds-backend/internal/session"
	"go.uber.org/zap"
)

const SID = "test-session"

func newRouter(state *session.State) *chi.Mux {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), session.IDContextKey{}, SID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	New(state, zap.NewNop()).Register(router)
	return router
}

func TestHandler_getSessionHandler(t *testing.T) {
	ctx := context.Background()
	state := session.NewState(session.NewMemoryStore(0))
	router := newRouter(state)

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"currentUser":null,"lastLocation":null}`, rec.Body.String())

	require.NoError(t, state.SetCurrentUser(ctx, SID, provider.Provider{
		ID:          10,
		Name:        "New Shop",
		ServiceType: provider.Shop,
		Contact:     "9876543210",
		IsVerified:  true,
		ShowContact: true,
	}))
	require.NoError(t, state.SetLastLocation(ctx, SID, location.Location{
		OfficeName: "Bangalore GPO",
		Pincode:    "560001",
	}))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/session", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"currentUser":{"id":10,"name":"New Shop","serviceType":"Shop","contact":"9876543210","isVerified":true,"showContact":true},
		"lastLocation":{"officeName":"Bangalore GPO","pincode":"560001","taluk":"","districtName":"","stateName":""}
	}`, rec.Body.String())
}

func TestHandler_logoutHandler(t *testing.T) {
	ctx := context.Background()
	state := session.NewState(session.NewMemoryStore(0))
	router := newRouter(state)

	require.NoError(t, state.SetCurrentUser(ctx, SID, provider.Provider{ID: 1}))
	require.NoError(t, state.SetLastLocation(ctx, SID, location.Location{Pincode: "560001"}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/session/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	user, err := state.CurrentUser(ctx, SID)
	require.NoError(t, err)
	assert.Nil(t, user)

	l, err := state.LastLocation(ctx, SID)
	require.NoError(t, err)
	assert.Nil(t, l)
}
