package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"weatherlinx/weather-service/internal/service"
	"weatherlinx/weather-service/internal/weather"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
	router         chi.Router
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	h := &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}
	h.router = h.routes()
	return h
}

func (h *WeatherHandler) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, accessLog, middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	r.Get("/weather", h.GetWeather)
	r.Get("/historic", h.GetHistoric)
	r.Get("/listHistoric", h.GetHistoricByID)
	r.Get("/forecast", h.GetForecast)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		respondWithError(w, http.StatusBadRequest, msgInvalidCity)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	current, err := h.weatherService.GetCurrentWeather(ctx, city)
	if err != nil {
		h.respondWithFailure(w, err, "failed to get weather data", city)
		return
	}

	respondWithJSON(w, http.StatusOK, current)
}

func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		respondWithError(w, http.StatusBadRequest, msgInvalidCity)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	days, err := h.weatherService.GetForecast(ctx, city)
	if err != nil {
		h.respondWithFailure(w, err, "failed to get forecast", city)
		return
	}

	respondWithJSON(w, http.StatusOK, days)
}

func (h *WeatherHandler) GetHistoric(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	summaries, err := h.weatherService.ListHistoric(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list historic weather")
		respondWithError(w, http.StatusInternalServerError, msgHistoricError)
		return
	}

	respondWithJSON(w, http.StatusOK, summaries)
}

func (h *WeatherHandler) GetHistoricByID(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("identidade"))
	if raw == "" {
		respondWithError(w, http.StatusBadRequest, msgHistoricError)
		return
	}

	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		respondWithJSON(w, http.StatusOK, weather.NewFailure(weather.MsgHistoricUnavailable))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	current, err := h.weatherService.GetHistoric(ctx, uint(id))
	if err != nil {
		if failure, ok := weather.AsFailure(err); ok {
			respondWithJSON(w, http.StatusOK, failure)
			return
		}
		log.Error().Err(err).Uint64("identidade", id).Msg("failed to fetch historic weather")
		respondWithError(w, http.StatusInternalServerError, msgHistoricError)
		return
	}

	respondWithJSON(w, http.StatusOK, current)
}

// respondWithFailure writes tagged failures as 200 bodies; anything else is
// an unexpected error.
func (h *WeatherHandler) respondWithFailure(w http.ResponseWriter, err error, logMsg, city string) {
	if failure, ok := weather.AsFailure(err); ok {
		respondWithJSON(w, http.StatusOK, failure)
		return
	}

	log.Error().Err(err).Str("city", city).Msg(logMsg)
	respondWithError(w, http.StatusInternalServerError, logMsg)
}
