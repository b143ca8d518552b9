package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"weatherlinx/weather-service/internal/db/historic"
	"weatherlinx/weather-service/internal/metrics"
	"weatherlinx/weather-service/internal/providers"
	"weatherlinx/weather-service/internal/weather"
)

// HistoricSummary is one line of the historic listing.
type HistoricSummary struct {
	ID       uint   `json:"identidade"`
	CityName string `json:"cidade"`
	Date     string `json:"data"`
}

// WeatherService returns *weather.Failure for outcomes that are reported to
// the caller as a tagged body rather than an HTTP error.
type WeatherService interface {
	GetCurrentWeather(ctx context.Context, city string) (weather.CurrentWeather, error)
	GetForecast(ctx context.Context, city string) ([]weather.DailyForecast, error)
	ListHistoric(ctx context.Context) ([]HistoricSummary, error)
	GetHistoric(ctx context.Context, id uint) (weather.CurrentWeather, error)
}

type weatherService struct {
	provider   providers.WeatherProvider
	normalizer *weather.Normalizer
	repo       historic.Repository
}

func NewWeatherService(provider providers.WeatherProvider, normalizer *weather.Normalizer, repo historic.Repository) WeatherService {
	return &weatherService{
		provider:   provider,
		normalizer: normalizer,
		repo:       repo,
	}
}

func (s *weatherService) GetCurrentWeather(ctx context.Context, city string) (weather.CurrentWeather, error) {
	if city == "" {
		return weather.CurrentWeather{}, errors.New("city cannot be empty")
	}

	raw, err := s.provider.FetchCurrent(ctx, city)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("failed to fetch current weather")
		return weather.CurrentWeather{}, weather.NewFailure(weather.MsgCityNotFound)
	}

	current, err := s.normalizer.NormalizeCurrent(raw)
	if err != nil {
		return weather.CurrentWeather{}, err
	}

	// Storage problems never reach the caller; they are logged and counted.
	inserted, err := s.repo.InsertIfAbsent(ctx, current)
	switch {
	case err != nil:
		metrics.RecordStoreOperation("insert", metrics.OutcomeError)
		log.Error().Err(err).
			Str("city", city).
			Int64("provider_city_id", current.ProviderCityID).
			Msg("failed to store historic weather")
	case inserted:
		metrics.RecordStoreOperation("insert", metrics.OutcomeSuccess)
	default:
		metrics.RecordStoreOperation("insert", metrics.OutcomeSkipped)
		log.Debug().Int64("provider_city_id", current.ProviderCityID).Msg("historic weather already stored for today")
	}

	return current, nil
}

func (s *weatherService) GetForecast(ctx context.Context, city string) ([]weather.DailyForecast, error) {
	if city == "" {
		return nil, errors.New("city cannot be empty")
	}

	raw, err := s.provider.FetchForecast(ctx, city)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("failed to fetch forecast")
		return nil, weather.NewFailure(weather.MsgForecastUnavailable)
	}

	return s.normalizer.AggregateForecast(raw)
}

func (s *weatherService) ListHistoric(ctx context.Context) ([]HistoricSummary, error) {
	summaries, err := s.repo.ListAll(ctx)
	if err != nil {
		metrics.RecordStoreOperation("list", metrics.OutcomeError)
		return nil, fmt.Errorf("listing historic weather: %w", err)
	}
	metrics.RecordStoreOperation("list", metrics.OutcomeSuccess)

	result := make([]HistoricSummary, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, HistoricSummary{
			ID:       summary.ID,
			CityName: summary.CityName,
			Date:     s.normalizer.FormatDate(summary.ForecastDate),
		})
	}
	return result, nil
}

func (s *weatherService) GetHistoric(ctx context.Context, id uint) (weather.CurrentWeather, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, historic.ErrNotFound) {
			metrics.RecordStoreOperation("find", metrics.OutcomeSkipped)
			return weather.CurrentWeather{}, weather.NewFailure(weather.MsgHistoricUnavailable)
		}
		metrics.RecordStoreOperation("find", metrics.OutcomeError)
		return weather.CurrentWeather{}, fmt.Errorf("finding historic weather %d: %w", id, err)
	}
	metrics.RecordStoreOperation("find", metrics.OutcomeSuccess)

	return weather.CurrentWeather{
		Status:         weather.StatusSuccess,
		Description:    record.Description,
		IconURL:        record.IconURL,
		CountryFlagURL: record.CountryFlagURL,
		WindSpeed:      record.WindSpeed,
		Humidity:       record.Humidity,
		Temp:           record.Temp,
		TempMax:        record.TempMax,
		TempMin:        record.TempMin,
		ObservedAt:     s.normalizer.FormatDate(record.ForecastDate),
		ProviderCityID: record.ProviderCityID,
		CityName:       record.CityName,
		CountryCode:    record.CountryCode,
	}, nil
}
