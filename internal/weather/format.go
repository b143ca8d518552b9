package weather

import (
	"fmt"
	"time"
)

const (
	iconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"
	flagURLTemplate = "https://flagsapi.com/%s/shiny/64.png"
)

// DateFormatter renders a calendar date for display.
type DateFormatter interface {
	FormatDate(t time.Time) string
}

var (
	ptWeekdays = [...]string{
		time.Sunday:    "domingo",
		time.Monday:    "segunda-feira",
		time.Tuesday:   "terça-feira",
		time.Wednesday: "quarta-feira",
		time.Thursday:  "quinta-feira",
		time.Friday:    "sexta-feira",
		time.Saturday:  "sábado",
	}
	ptMonths = [...]string{
		time.January:   "janeiro",
		time.February:  "fevereiro",
		time.March:     "março",
		time.April:     "abril",
		time.May:       "maio",
		time.June:      "junho",
		time.July:      "julho",
		time.August:    "agosto",
		time.September: "setembro",
		time.October:   "outubro",
		time.November:  "novembro",
		time.December:  "dezembro",
	}
)

// PortugueseDateFormatter renders dates as "sábado, 20 de agosto de 2023".
type PortugueseDateFormatter struct{}

func (PortugueseDateFormatter) FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %02d de %s de %d", ptWeekdays[t.Weekday()], t.Day(), ptMonths[t.Month()], t.Year())
}

func IconURL(icon string) string {
	return fmt.Sprintf(iconURLTemplate, icon)
}

func CountryFlagURL(countryCode string) string {
	return fmt.Sprintf(flagURLTemplate, countryCode)
}

func formatSpeed(v string) string       { return v + " Km/h" }
func formatHumidity(v string) string    { return v + "%" }
func formatTemperature(v string) string { return v + " °C" }
