package weather

import (
	"bytes"
	"encoding/json"
	"time"
)

type providerCondition struct {
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type providerMain struct {
	Temp     *json.Number `json:"temp"`
	TempMax  *json.Number `json:"temp_max"`
	TempMin  *json.Number `json:"temp_min"`
	Humidity *json.Number `json:"humidity"`
}

type providerWind struct {
	Speed *json.Number `json:"speed"`
}

type providerSys struct {
	Country *string `json:"country"`
}

type currentPayload struct {
	Weather []providerCondition `json:"weather"`
	Sys     *providerSys        `json:"sys"`
	Wind    *providerWind       `json:"wind"`
	Main    *providerMain       `json:"main"`
	ID      *json.Number        `json:"id"`
	Name    *string             `json:"name"`
}

// Normalizer maps raw provider payloads into the service's shapes. The clock
// decides both the observation date and which forecast samples count as today.
type Normalizer struct {
	formatter DateFormatter
	now       func() time.Time
}

func NewNormalizer(formatter DateFormatter, now func() time.Time) *Normalizer {
	if formatter == nil {
		formatter = PortugueseDateFormatter{}
	}
	if now == nil {
		now = time.Now
	}
	return &Normalizer{formatter: formatter, now: now}
}

// NormalizeCurrent converts a current-conditions payload. Any missing or
// mistyped field yields the "city not found" failure.
func (n *Normalizer) NormalizeCurrent(raw []byte) (CurrentWeather, error) {
	var payload currentPayload
	if err := decode(raw, &payload); err != nil {
		return CurrentWeather{}, NewFailure(MsgCityNotFound)
	}

	if len(payload.Weather) == 0 || payload.Sys == nil || payload.Wind == nil || payload.Main == nil || payload.ID == nil {
		return CurrentWeather{}, NewFailure(MsgCityNotFound)
	}

	cond := payload.Weather[0]
	if cond.Description == nil || cond.Icon == nil || payload.Sys.Country == nil || payload.Wind.Speed == nil || !payload.Main.complete() {
		return CurrentWeather{}, NewFailure(MsgCityNotFound)
	}

	cityID, err := payload.ID.Int64()
	if err != nil {
		return CurrentWeather{}, NewFailure(MsgCityNotFound)
	}

	var cityName string
	if payload.Name != nil {
		cityName = *payload.Name
	}

	return CurrentWeather{
		Status:         StatusSuccess,
		Description:    *cond.Description,
		IconURL:        IconURL(*cond.Icon),
		CountryFlagURL: CountryFlagURL(*payload.Sys.Country),
		WindSpeed:      formatSpeed(payload.Wind.Speed.String()),
		Humidity:       formatHumidity(payload.Main.Humidity.String()),
		Temp:           formatTemperature(payload.Main.Temp.String()),
		TempMax:        formatTemperature(payload.Main.TempMax.String()),
		TempMin:        formatTemperature(payload.Main.TempMin.String()),
		ObservedAt:     n.formatter.FormatDate(n.now()),
		ProviderCityID: cityID,
		CityName:       cityName,
		CountryCode:    *payload.Sys.Country,
	}, nil
}

// FormatDate exposes the normalizer's formatter so stored dates render the
// same way as fresh ones.
func (n *Normalizer) FormatDate(t time.Time) string {
	return n.formatter.FormatDate(t)
}

func (m *providerMain) complete() bool {
	return m.Temp != nil && m.TempMax != nil && m.TempMin != nil && m.Humidity != nil
}

func decode(raw []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}
