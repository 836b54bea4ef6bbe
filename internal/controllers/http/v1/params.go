package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"airquality-dashboard/internal/models"
)

// resolveRange reads start/end from the query. Missing ends default to the
// dataset span and values outside it are clamped, the way a date picker
// bounded by the span would behave.
func resolveRange(c *fiber.Ctx, span models.DateRange) (models.DateRange, error) {
	r := span

	if s := c.Query("start"); s != "" {
		t, err := time.Parse(models.DateLayout, s)
		if err != nil {
			return models.DateRange{}, errors.New("invalid 'start' (expected YYYY-MM-DD)")
		}
		r.Start = t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse(models.DateLayout, s)
		if err != nil {
			return models.DateRange{}, errors.New("invalid 'end' (expected YYYY-MM-DD)")
		}
		r.End = t
	}

	if r.Start.After(r.End) {
		return models.DateRange{}, errors.New("'start' must be <= 'end'")
	}

	return r.Clamp(span), nil
}
