package history

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/weatherlens/weatherlens/internal/weather"
)

// lookbackYears is the number of preceding years aggregated per call.
const lookbackYears = 3

// Archive defines the interface for historical-archive providers.
type Archive interface {
	// Day fetches the archive measurements for a single calendar day.
	// The date is in YYYY-MM-DD form.
	Day(ctx context.Context, lat, lon float64, date string) (*DaySummary, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the lookback service.
type ServiceConfig struct {
	// Archive is the historical-archive provider (required).
	Archive Archive

	// Logger for service operations.
	Logger zerolog.Logger

	// PerCallTimeout bounds each yearly archive call (default: 10s).
	PerCallTimeout time.Duration
}

// Service aggregates per-year archive lookups.
type Service struct {
	archive Archive
	logger  zerolog.Logger
	timeout time.Duration
}

// NewService creates a new lookback service.
func NewService(cfg ServiceConfig) *Service {
	timeout := cfg.PerCallTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Service{
		archive: cfg.Archive,
		logger:  cfg.Logger,
		timeout: timeout,
	}
}

// Lookback returns exactly one record per lookback year (anchor−1,
// anchor−2, anchor−3, in that order) for the anchor's calendar day.
// A year whose fetch fails yields a record carrying only the year,
// date and error category; sibling years are unaffected. The only
// whole-operation failure is invalid input.
func (s *Service) Lookback(ctx context.Context, lat, lon float64, anchor time.Time) ([]DayRecord, error) {
	if !(weather.Coordinates{Lat: lat, Lon: lon}).Valid() {
		return nil, weather.E(weather.KindInvalidInput, "latitude must be in [-90,90] and longitude in [-180,180]")
	}

	records := make([]DayRecord, 0, lookbackYears)
	for back := 1; back <= lookbackYears; back++ {
		target := anchor.AddDate(-back, 0, 0)
		records = append(records, s.fetchYear(ctx, lat, lon, target))
	}
	return records, nil
}

func (s *Service) fetchYear(ctx context.Context, lat, lon float64, target time.Time) DayRecord {
	date := target.Format("2006-01-02")
	rec := DayRecord{Year: target.Year(), Date: date}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	day, err := s.archive.Day(callCtx, lat, lon, date)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int("year", target.Year()).
			Str("date", date).
			Str("provider", s.archive.Name()).
			Msg("lookback year failed")
		rec.Error = weather.KindOf(err)
		return rec
	}

	if day.Date != "" && day.Date != date {
		// Values are still used; the mismatch is worth knowing about.
		s.logger.Warn().
			Str("requested", date).
			Str("returned", day.Date).
			Msg("archive returned a different date than requested")
	}

	rec.MaxTempC = day.MaxTempC
	rec.MinTempC = day.MinTempC
	rec.PrecipitationMM = day.PrecipitationMM
	return rec
}
