package providers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"weatherlinx/weather-service/internal/metrics"
	"weatherlinx/weather-service/internal/providers"
)

type OpenWeatherClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	requests []*url.URL
	paths    []string
	provider providers.WeatherProvider
}

func (s *OpenWeatherClientTestSuite) SetupTest() {
	s.requests = nil
	s.paths = nil

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests = append(s.requests, r.URL)
		s.paths = append(s.paths, r.URL.Path)

		switch r.URL.Query().Get("q") {
		case "Osorio":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":   3445026,
				"name": "Osorio",
			})
		case "Nowhere":
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"cod":     "404",
				"message": "city not found",
			})
		case "MalformedJSON":
			w.Write([]byte("{malformed json"))
		case "Huge":
			w.Write(bytes.Repeat([]byte(" "), 2<<20))
			w.Write([]byte("{}"))
		case "Slow":
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte("{}"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	var err error
	s.provider, err = providers.NewOpenWeatherClient("test_api_key", s.server.URL+"/data/2.5/")
	s.Require().NoError(err)
}

func (s *OpenWeatherClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *OpenWeatherClientTestSuite) TestNewClientRequiresAPIKey() {
	provider, err := providers.NewOpenWeatherClient("", "")
	s.Error(err)
	s.Nil(provider)
	s.Contains(err.Error(), "api key")
}

func (s *OpenWeatherClientTestSuite) TestFetchCurrentQueryParameters() {
	body, err := s.provider.FetchCurrent(context.Background(), "Osorio")

	s.Require().NoError(err)
	s.JSONEq(`{"id":3445026,"name":"Osorio"}`, string(body))

	s.Require().Len(s.requests, 1)
	s.Equal("/data/2.5/weather", s.paths[0])
	query := s.requests[0].Query()
	s.Equal("Osorio", query.Get("q"))
	s.Equal("test_api_key", query.Get("appid"))
	s.Equal("pt_br", query.Get("lang"))
	s.Equal("metric", query.Get("units"))
	s.Empty(query.Get("cnt"))
}

func (s *OpenWeatherClientTestSuite) TestFetchForecastQueryParameters() {
	_, err := s.provider.FetchForecast(context.Background(), "Osorio")

	s.Require().NoError(err)
	s.Require().Len(s.requests, 1)
	s.Equal("/data/2.5/forecast", s.paths[0])
	query := s.requests[0].Query()
	s.Equal("40", query.Get("cnt"))
	s.Equal("pt_br", query.Get("lang"))
	s.Equal("metric", query.Get("units"))
}

func (s *OpenWeatherClientTestSuite) TestCityNameIsEscaped() {
	_, err := s.provider.FetchCurrent(context.Background(), "São Paulo&appid=x")

	s.Error(err)
	s.Require().Len(s.requests, 1)
	s.Equal("São Paulo&appid=x", s.requests[0].Query().Get("q"))
	s.Equal("test_api_key", s.requests[0].Query().Get("appid"))
}

func (s *OpenWeatherClientTestSuite) TestProviderErrorBodyIsPassedThrough() {
	body, err := s.provider.FetchCurrent(context.Background(), "Nowhere")

	s.Require().NoError(err)
	s.JSONEq(`{"cod":"404","message":"city not found"}`, string(body))
}

func (s *OpenWeatherClientTestSuite) TestMalformedJSON() {
	_, err := s.provider.FetchForecast(context.Background(), "MalformedJSON")

	s.Error(err)
	s.Contains(err.Error(), "malformed JSON")
}

func (s *OpenWeatherClientTestSuite) TestServerErrorWithoutBody() {
	_, err := s.provider.FetchCurrent(context.Background(), "ServerError")

	s.Error(err)
	s.Contains(err.Error(), "status code: 500")
}

func (s *OpenWeatherClientTestSuite) TestContextCancellation() {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.provider.FetchCurrent(ctx, "Slow")

	s.Error(err)
	s.Contains(err.Error(), "request failed")
}

func (s *OpenWeatherClientTestSuite) TestTransportFailure() {
	s.server.Close()

	_, err := s.provider.FetchCurrent(context.Background(), "Osorio")

	s.Error(err)
	s.Contains(err.Error(), "request failed")
}

func (s *OpenWeatherClientTestSuite) TestTransportFailureDoesNotExposeAPIKey() {
	provider, err := providers.NewOpenWeatherClient("SUPERSECRETKEY", s.server.URL)
	s.Require().NoError(err)
	s.server.Close()

	_, err = provider.FetchCurrent(context.Background(), "Osorio")

	s.Require().Error(err)
	s.NotContains(err.Error(), "SUPERSECRETKEY")
	s.NotContains(err.Error(), "appid")
}

func (s *OpenWeatherClientTestSuite) TestTimeoutDoesNotExposeAPIKey() {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.provider.FetchForecast(ctx, "Slow")

	s.Require().Error(err)
	s.NotContains(err.Error(), "test_api_key")
}

func (s *OpenWeatherClientTestSuite) TestOversizedBodyIsRejected() {
	_, err := s.provider.FetchForecast(context.Background(), "Huge")

	s.Require().Error(err)
	s.Contains(err.Error(), "exceeds")
}

func (s *OpenWeatherClientTestSuite) TestOutcomeMetrics() {
	rejected := metrics.ProviderRequests().WithLabelValues("weather", metrics.OutcomeRejected)
	succeeded := metrics.ProviderRequests().WithLabelValues("weather", metrics.OutcomeSuccess)
	failed := metrics.ProviderRequests().WithLabelValues("weather", metrics.OutcomeError)
	rejectedBefore := testutil.ToFloat64(rejected)
	succeededBefore := testutil.ToFloat64(succeeded)
	failedBefore := testutil.ToFloat64(failed)

	_, err := s.provider.FetchCurrent(context.Background(), "Nowhere")
	s.Require().NoError(err)
	_, err = s.provider.FetchCurrent(context.Background(), "Osorio")
	s.Require().NoError(err)
	_, err = s.provider.FetchCurrent(context.Background(), "ServerError")
	s.Require().Error(err)

	s.Equal(rejectedBefore+1, testutil.ToFloat64(rejected))
	s.Equal(succeededBefore+1, testutil.ToFloat64(succeeded))
	s.Equal(failedBefore+1, testutil.ToFloat64(failed))
}

func TestOpenWeatherClientSuite(t *testing.T) {
	suite.Run(t, new(OpenWeatherClientTestSuite))
}
