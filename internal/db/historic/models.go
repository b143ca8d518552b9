package historic

import (
	"time"
)

// Record is one stored current-weather observation. At most one exists per
// (ForecastDate, ProviderCityID).
type Record struct {
	ID             uint      `gorm:"primaryKey"`
	CityName       string    `gorm:"column:city_name;size:100"`
	CountryCode    string    `gorm:"column:country_code;size:10"`
	ForecastDate   time.Time `gorm:"column:forecast_date;type:date;uniqueIndex:idx_historic_day_city"`
	RecordedAt     time.Time `gorm:"column:recorded_at"`
	Description    string    `gorm:"column:description;size:100"`
	IconURL        string    `gorm:"column:icon_url;type:text"`
	CountryFlagURL string    `gorm:"column:country_flag_url;type:text"`
	WindSpeed      string    `gorm:"column:wind_speed;size:20"`
	Humidity       string    `gorm:"column:humidity;size:20"`
	Temp           string    `gorm:"column:temp;size:20"`
	TempMax        string    `gorm:"column:temp_max;size:20"`
	TempMin        string    `gorm:"column:temp_min;size:20"`
	ProviderCityID int64     `gorm:"column:provider_city_id;uniqueIndex:idx_historic_day_city"`
}

func (Record) TableName() string {
	return "historic_weather"
}

// Summary is the projection used by the historic listing.
type Summary struct {
	ID           uint
	CityName     string
	ForecastDate time.Time
}
