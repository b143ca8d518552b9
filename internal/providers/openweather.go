package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"weatherlinx/weather-service/internal/metrics"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	language = "pt_br"
	units    = "metric"
	// 40 samples / (24h / 3h) = 5 days, the maximum for the free 5 day / 3 hour plan.
	forecastCount = "40"

	// A full 40-sample forecast is a few tens of KB.
	maxBodyBytes = 1 << 20

	endpointCurrent  = "weather"
	endpointForecast = "forecast"
)

// WeatherProvider fetches raw OpenWeatherMap payloads. Bodies are returned
// untouched, including the provider's own error documents.
type WeatherProvider interface {
	FetchCurrent(ctx context.Context, city string) ([]byte, error)
	FetchForecast(ctx context.Context, city string) ([]byte, error)
}

type openWeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenWeatherClient(apiKey, baseURL string) (WeatherProvider, error) {
	if apiKey == "" {
		return nil, errors.New("openweather api key is not configured")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &openWeatherClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (c *openWeatherClient) FetchCurrent(ctx context.Context, city string) ([]byte, error) {
	return c.fetch(ctx, endpointCurrent, c.query(city))
}

func (c *openWeatherClient) FetchForecast(ctx context.Context, city string) ([]byte, error) {
	params := c.query(city)
	params.Set("cnt", forecastCount)
	return c.fetch(ctx, endpointForecast, params)
}

func (c *openWeatherClient) query(city string) url.Values {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("lang", language)
	params.Set("units", units)
	return params
}

func (c *openWeatherClient) fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	start := time.Now()
	body, status, err := c.do(ctx, endpoint, params)

	outcome := metrics.OutcomeSuccess
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case status != http.StatusOK:
		outcome = metrics.OutcomeRejected
	}
	metrics.RecordProviderRequest(endpoint, outcome, time.Since(start).Seconds())

	return body, err
}

func (c *openWeatherClient) do(ctx context.Context, endpoint string, params url.Values) ([]byte, int, error) {
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("openweather %s: building request: %w", endpoint, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		// *url.Error carries the full request URL, appid included.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, 0, fmt.Errorf("openweather %s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("openweather %s: reading body: %w", endpoint, err)
	}
	if len(body) > maxBodyBytes {
		return nil, resp.StatusCode, fmt.Errorf("openweather %s: response body exceeds %d bytes", endpoint, maxBodyBytes)
	}

	if !json.Valid(body) {
		return nil, resp.StatusCode, fmt.Errorf("openweather %s returned malformed JSON (status code: %d)", endpoint, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			Msg("openweather returned non-200 status")
	}

	return body, resp.StatusCode, nil
}
