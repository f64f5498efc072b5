// Package config reads process settings from the environment, with .env
// support for local runs. Values missing from the environment fall back to
// the defaults the dashboard ships with.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Forecast horizons the UI slider exposes. Values from the environment are
// clamped into this range rather than rejected.
const (
	MinHorizon = 1
	MaxHorizon = 5
)

// Settings holds the process configuration: where the dataset lives, the
// selectors the dashboard opens on, and how far ahead forecasts run.
type Settings struct {
	DataFile        string
	DefaultSeason   string
	DefaultYear     string
	ForecastHorizon int
}

// Load reads settings from the environment. A .env file in the working
// directory is merged in first when present; a missing one is not an
// error.
func Load() Settings {
	_ = godotenv.Load()

	return Settings{
		DataFile:        getenv("AGRI_DATA_FILE", "agri_analysis_punjab_clean.csv"),
		DefaultSeason:   getenv("AGRI_DEFAULT_SEASON", "All"),
		DefaultYear:     getenv("AGRI_DEFAULT_YEAR", "All"),
		ForecastHorizon: horizon(getenv("AGRI_FORECAST_HORIZON", "3")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// horizon parses and clamps the forecast horizon. Unparseable values fall
// back to the slider midpoint.
func horizon(text string) int {
	h, err := strconv.Atoi(text)
	if err != nil {
		return 3
	}
	if h < MinHorizon {
		return MinHorizon
	}
	if h > MaxHorizon {
		return MaxHorizon
	}
	return h
}
