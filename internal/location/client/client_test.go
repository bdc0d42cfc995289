package locationclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/pinfinds-backend/internal/location"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(Config{
		BaseURL: server.URL,
		Timeout: time.Second,
		RPS:     100,
		Burst:   10,
	}, zap.NewNop())
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name              string
		status            int
		body              string
		expectedLocations []location.Location
	}{
		{
			name:   "numeric and string pincodes",
			status: http.StatusOK,
			body: `{"pincodeLookup":[
				{"officeName":"Bangalore GPO","pincode":560001,"taluk":"Bangalore North","districtName":"Bangalore","stateName":"Karnataka"},
				{"officeName":"Port Blair","pincode":"044101","taluk":"Port Blair","districtName":"South Andaman","stateName":"Andaman and Nicobar Islands"}
			]}`,
			expectedLocations: []location.Location{
				{OfficeName: "Bangalore GPO", Pincode: "560001", Taluk: "Bangalore North", DistrictName: "Bangalore", StateName: "Karnataka"},
				{OfficeName: "Port Blair", Pincode: "044101", Taluk: "Port Blair", DistrictName: "South Andaman", StateName: "Andaman and Nicobar Islands"},
			},
		},
		{
			name:              "empty lookup",
			status:            http.StatusOK,
			body:              `{"pincodeLookup":[]}`,
			expectedLocations: []location.Location{},
		},
		{
			name:              "missing array",
			status:            http.StatusOK,
			body:              `{"message":"nothing here"}`,
			expectedLocations: []location.Location{},
		},
		{
			name:              "bad json",
			status:            http.StatusOK,
			body:              `not json`,
			expectedLocations: []location.Location{},
		},
		{
			name:              "upstream failure",
			status:            http.StatusInternalServerError,
			body:              `{"pincodeLookup":[{"officeName":"x","pincode":1}]}`,
			expectedLocations: []location.Location{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			locations := c.Search(context.Background(), "Bangalore")
			require.NotNil(t, locations)
			assert.Equal(t, tt.expectedLocations, locations)
			assert.Equal(t, "/Bangalore", path)
		})
	}
}

func TestSearch_CancelledContext(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	c.limiter.SetBurst(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	locations := c.Search(ctx, "560001")
	assert.Empty(t, locations)
	assert.False(t, called)
}

func TestSearch_Unreachable(t *testing.T) {
	c := New(Config{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 500 * time.Millisecond,
		RPS:     10,
		Burst:   1,
	}, zap.NewNop())

	assert.Empty(t, c.Search(context.Background(), "560001"))
}
