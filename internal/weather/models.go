package weather

const (
	StatusFailure = 0
	StatusSuccess = 1
)

// CurrentWeather is the simplified current-conditions shape served to the
// front end and persisted in the historic table.
type CurrentWeather struct {
	Status         int    `json:"status"`
	Description    string `json:"previsao"`
	IconURL        string `json:"icon"`
	CountryFlagURL string `json:"pais"`
	WindSpeed      string `json:"vento"`
	Humidity       string `json:"umidade"`
	Temp           string `json:"temp"`
	TempMax        string `json:"temp_max"`
	TempMin        string `json:"temp_min"`
	ObservedAt     string `json:"data"`
	ProviderCityID int64  `json:"id"`
	CityName       string `json:"cidade"`

	CountryCode string `json:"-"`
}

// DailyForecast is one calendar day collapsed from the provider's
// 3-hour samples.
type DailyForecast struct {
	Description string `json:"previsao"`
	IconURL     string `json:"icon"`
	WindSpeed   string `json:"vento"`
	Humidity    string `json:"umidade"`
	Temp        string `json:"temp"`
	TempMax     string `json:"temp_max"`
	TempMin     string `json:"temp_min"`
	Date        string `json:"data"`
}
