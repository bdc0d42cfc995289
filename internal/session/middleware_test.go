package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mocktoken "github.com/xw1nchester/pinfinds-backend/internal/session/mocks/token"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSessionMiddleware(t *testing.T) {
	cookie := CookieConfig{Name: "sid"}

	tests := []struct {
		name               string
		cookieValue        string
		setupMock          func(m *mocktoken.MockTokenManager)
		expectedStatusCode int
		expectNewCookie    bool
		expectedSID        string
	}{
		{
			name:        "no cookie",
			cookieValue: "",
			setupMock: func(m *mocktoken.MockTokenManager) {
				m.EXPECT().GenerateToken(gomock.Any()).Return("new.token", nil)
				m.EXPECT().GetTTL().Return(time.Hour)
			},
			expectedStatusCode: http.StatusOK,
			expectNewCookie:    true,
		},
		{
			name:        "invalid cookie",
			cookieValue: "invalid.token",
			setupMock: func(m *mocktoken.MockTokenManager) {
				m.EXPECT().ParseToken("invalid.token").Return("", errors.New("invalid token"))
				m.EXPECT().GenerateToken(gomock.Any()).Return("new.token", nil)
				m.EXPECT().GetTTL().Return(time.Hour)
			},
			expectedStatusCode: http.StatusOK,
			expectNewCookie:    true,
		},
		{
			name:        "valid cookie",
			cookieValue: "valid.token",
			setupMock: func(m *mocktoken.MockTokenManager) {
				m.EXPECT().ParseToken("valid.token").Return(SID, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedSID:        SID,
		},
		{
			name:        "token generation failure",
			cookieValue: "",
			setupMock: func(m *mocktoken.MockTokenManager) {
				m.EXPECT().GenerateToken(gomock.Any()).Return("", errors.New("signing failed"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokenManager := mocktoken.NewMockTokenManager(ctrl)
			tt.setupMock(tokenManager)

			var actualSID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				actualSID = IDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
			if tt.cookieValue != "" {
				req.AddCookie(&http.Cookie{Name: cookie.Name, Value: tt.cookieValue})
			}
			rec := httptest.NewRecorder()

			NewMiddleware(zap.NewNop(), tokenManager, cookie)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			cookies := rec.Result().Cookies()
			if !tt.expectNewCookie {
				assert.Empty(t, cookies)
				assert.Equal(t, tt.expectedSID, actualSID)
				return
			}

			require.Len(t, cookies, 1)
			assert.Equal(t, "new.token", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.Equal(t, 3600, cookies[0].MaxAge)

			_, err := uuid.Parse(actualSID)
			assert.NoError(t, err)
		})
	}
}
