package utils

import "time"

// ParseOptionalDate interpreta um parâmetro de data opcional. Datas
// ausentes ou malformadas viram nil (sem filtro), nunca erro.
func ParseOptionalDate(dateStr string) *time.Time {
	if dateStr == "" {
		return nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil
	}

	return &date
}
