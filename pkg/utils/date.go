package utils

import "time"

// ParseDate interpreta uma data no formato AAAA-MM-DD
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// PreviousMonth retorna o mês e o ano do mês anterior à data informada
func PreviousMonth(ref time.Time) (time.Month, int) {
	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	previous := firstOfMonth.AddDate(0, 0, -1)
	return previous.Month(), previous.Year()
}

// MonthBounds retorna o primeiro instante do mês e o primeiro instante do mês seguinte
func MonthBounds(month time.Month, year int) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
