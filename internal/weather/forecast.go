package weather

import (
	"encoding/json"
	"strings"
	"time"
)

const providerDateLayout = "2006-01-02"

type forecastSample struct {
	DtTxt   *string             `json:"dt_txt"`
	Weather []providerCondition `json:"weather"`
	Wind    *providerWind       `json:"wind"`
	Main    *providerMain       `json:"main"`
}

type forecastPayload struct {
	List *[]forecastSample `json:"list"`
}

// extreme keeps the provider literal next to its numeric value so the
// output shows exactly what the provider sent.
type extreme struct {
	value   float64
	literal string
}

type dayAggregate struct {
	date        string
	description string
	icon        string
	wind        string
	humidity    string
	temp        string
	max         extreme
	min         extreme
}

// AggregateForecast collapses the 3-hour forecast list into one entry per
// future calendar day, in order of first appearance. Samples dated today are
// skipped. Max only ratchets up and min only ratchets down.
func (n *Normalizer) AggregateForecast(raw []byte) ([]DailyForecast, error) {
	var payload forecastPayload
	if err := decode(raw, &payload); err != nil || payload.List == nil {
		return nil, NewFailure(MsgForecastUnavailable)
	}

	today := n.now().Format(providerDateLayout)

	var order []*dayAggregate
	byDate := make(map[string]*dayAggregate)

	for _, sample := range *payload.List {
		if sample.DtTxt == nil {
			return nil, NewFailure(MsgForecastUnavailable)
		}
		fields := strings.Fields(*sample.DtTxt)
		if len(fields) == 0 {
			return nil, NewFailure(MsgForecastUnavailable)
		}
		date := fields[0]
		if date == today {
			continue
		}

		if sample.Main == nil || sample.Main.TempMax == nil || sample.Main.TempMin == nil {
			return nil, NewFailure(MsgForecastUnavailable)
		}
		hi, err := toExtreme(*sample.Main.TempMax)
		if err != nil {
			return nil, NewFailure(MsgForecastUnavailable)
		}
		lo, err := toExtreme(*sample.Main.TempMin)
		if err != nil {
			return nil, NewFailure(MsgForecastUnavailable)
		}

		agg, seen := byDate[date]
		if !seen {
			agg, err = seedDay(date, sample, hi, lo)
			if err != nil {
				return nil, err
			}
			byDate[date] = agg
			order = append(order, agg)
			continue
		}

		if hi.value > agg.max.value {
			agg.max = hi
		}
		if lo.value < agg.min.value {
			agg.min = lo
		}
	}

	days := make([]DailyForecast, 0, len(order))
	for _, agg := range order {
		date, err := time.Parse(providerDateLayout, agg.date)
		if err != nil {
			return nil, NewFailure(MsgForecastUnavailable)
		}
		days = append(days, DailyForecast{
			Description: agg.description,
			IconURL:     IconURL(agg.icon),
			WindSpeed:   formatSpeed(agg.wind),
			Humidity:    formatHumidity(agg.humidity),
			Temp:        formatTemperature(agg.temp),
			TempMax:     formatTemperature(agg.max.literal),
			TempMin:     formatTemperature(agg.min.literal),
			Date:        n.formatter.FormatDate(date),
		})
	}

	return days, nil
}

func seedDay(date string, sample forecastSample, hi, lo extreme) (*dayAggregate, error) {
	if len(sample.Weather) == 0 || sample.Wind == nil || sample.Wind.Speed == nil ||
		sample.Main.Humidity == nil || sample.Main.Temp == nil {
		return nil, NewFailure(MsgForecastUnavailable)
	}
	cond := sample.Weather[0]
	if cond.Description == nil || cond.Icon == nil {
		return nil, NewFailure(MsgForecastUnavailable)
	}

	return &dayAggregate{
		date:        date,
		description: *cond.Description,
		icon:        *cond.Icon,
		wind:        sample.Wind.Speed.String(),
		humidity:    sample.Main.Humidity.String(),
		temp:        sample.Main.Temp.String(),
		max:         hi,
		min:         lo,
	}, nil
}

func toExtreme(n json.Number) (extreme, error) {
	v, err := n.Float64()
	if err != nil {
		return extreme{}, err
	}
	return extreme{value: v, literal: n.String()}, nil
}
