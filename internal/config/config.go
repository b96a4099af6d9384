// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and the environment on top of New().
// - Errors are wrapped with this package's sentinels.
package config

// DefaultDatasetURL is the public Summer Olympics medal table.
const DefaultDatasetURL = "https://raw.githubusercontent.com/R43ed/Data_Visualization/refs/heads/main/summer.csv"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format" validate:"omitempty,oneof=text json"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetURL is fetched at startup unless DatasetPath is set.
	DatasetURL string `koanf:"dataset_url" validate:"required_without=DatasetPath,omitempty,url"`

	// DatasetPath reads the CSV from disk instead of the network.
	DatasetPath string `koanf:"dataset_path"`

	// FetchTimeoutMS bounds the dataset download.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms" validate:"gt=0"`

	// TopCountries is the size of the medal tally.
	TopCountries int `koanf:"top_countries" validate:"gte=1,lte=250"`

	// YearStep is the slider step advertised by /api/options.
	YearStep int `koanf:"year_step" validate:"gte=1"`

	// MaxRecordsLimit caps GET /api/records?limit.
	MaxRecordsLimit int `koanf:"max_records_limit" validate:"gte=1"`

	// OverviewFollowsSelection computes the participation and sport series
	// over the filtered view instead of the whole dataset.
	OverviewFollowsSelection bool `koanf:"overview_follows_selection"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":9080",
		DatasetURL:      DefaultDatasetURL,
		FetchTimeoutMS:  30_000,
		TopCountries:    10,
		YearStep:        4,
		MaxRecordsLimit: 500,
	}
}
