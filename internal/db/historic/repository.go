package historic

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherlinx/weather-service/internal/weather"
)

var ErrNotFound = errors.New("historic record not found")

type Repository interface {
	InsertIfAbsent(ctx context.Context, current weather.CurrentWeather) (bool, error)
	FindByID(ctx context.Context, id uint) (*Record, error)
	ListAll(ctx context.Context) ([]Summary, error)
}

type WeatherSQLRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRepository(db *gorm.DB) Repository {
	return NewRepositoryWithClock(db, time.Now)
}

// NewRepositoryWithClock lets callers pin "today", which decides the
// deduplication key.
func NewRepositoryWithClock(db *gorm.DB, now func() time.Time) Repository {
	return &WeatherSQLRepository{db: db, now: now}
}

// InsertIfAbsent stores the observation under today's date unless the city
// already has a row for today. The unique index makes this a single atomic
// statement; a conflict is ignored and reported as inserted == false.
func (r *WeatherSQLRepository) InsertIfAbsent(ctx context.Context, current weather.CurrentWeather) (bool, error) {
	now := r.now()

	record := Record{
		CityName:       current.CityName,
		CountryCode:    current.CountryCode,
		ForecastDate:   dateOf(now),
		RecordedAt:     now,
		Description:    current.Description,
		IconURL:        current.IconURL,
		CountryFlagURL: current.CountryFlagURL,
		WindSpeed:      current.WindSpeed,
		Humidity:       current.Humidity,
		Temp:           current.Temp,
		TempMax:        current.TempMax,
		TempMin:        current.TempMin,
		ProviderCityID: current.ProviderCityID,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "forecast_date"}, {Name: "provider_city_id"}},
			DoNothing: true,
		}).
		Create(&record)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *WeatherSQLRepository) FindByID(ctx context.Context, id uint) (*Record, error) {
	var record Record
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ListAll returns every row, newest identity first.
func (r *WeatherSQLRepository) ListAll(ctx context.Context) ([]Summary, error) {
	summaries := make([]Summary, 0)
	err := r.db.WithContext(ctx).
		Model(&Record{}).
		Select("id", "city_name", "forecast_date").
		Order("id DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
