package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// parseDate acepta RFC3339 o fecha simple (2006-01-02).
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// parsePeriod lee start/end de la query. Sin parámetros el período por
// defecto son los últimos 30 días.
func parsePeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -30)
	end := now

	if s := c.Query("start"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = t
	}
	if s := c.Query("end"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// Fecha simple: incluir el día completo.
		if len(s) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		end = t
	}
	return start, end, nil
}

// queryDecimal devuelve nil si el parámetro no está presente o no parsea.
func queryDecimal(c *fiber.Ctx, key string) *decimal.Decimal {
	s := c.Query(key)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// queryBool devuelve nil si el parámetro no está presente.
func queryBool(c *fiber.Ctx, key string) *bool {
	switch c.Query(key) {
	case "true", "1":
		b := true
		return &b
	case "false", "0":
		b := false
		return &b
	default:
		return nil
	}
}
