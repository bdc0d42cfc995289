package locationclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xw1nchester/pinfinds-backend/internal/location"
	"github.com/xw1nchester/pinfinds-backend/pkg/types"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var errInvalidResponse = errors.New("invalid API response format")

type Config struct {
	BaseURL string
	Timeout time.Duration
	RPS     float64
	Burst   int
}

type lookupResponse struct {
	PincodeLookup []lookupItem `json:"pincodeLookup"`
}

type lookupItem struct {
	OfficeName   string               `json:"officeName"`
	Pincode      types.StringOrNumber `json:"pincode"`
	Taluk        string               `json:"taluk"`
	DistrictName string               `json:"districtName"`
	StateName    string               `json:"stateName"`
}

type client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *client {
	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		logger:     logger,
	}
}

// Search never fails: any lookup error is logged and reported as no results.
func (c *client) Search(ctx context.Context, term string) []location.Location {
	locations, err := c.search(ctx, term)
	if err != nil {
		c.logger.Error("error fetching locations", zap.String("term", term), zap.Error(err))

		return []location.Location{}
	}

	return locations
}

func (c *client) search(ctx context.Context, term string) ([]location.Location, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(term), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var data lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	if data.PincodeLookup == nil {
		return nil, errInvalidResponse
	}

	locations := make([]location.Location, len(data.PincodeLookup))
	for i, item := range data.PincodeLookup {
		locations[i] = location.Location{
			OfficeName:   item.OfficeName,
			Pincode:      item.Pincode.String(),
			Taluk:        item.Taluk,
			DistrictName: item.DistrictName,
			StateName:    item.StateName,
		}
	}

	return locations, nil
}
