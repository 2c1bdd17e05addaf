package utils

import (
	"time"

	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
)

// ParseDate interpreta una fecha calendario (YYYY-MM-DD) en la zona horaria
// del negocio.
func ParseDate(dateStr string) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Bogota())
	if err != nil {
		return time.Time{}, err
	}

	return date, nil
}
