package main

// Config is read from the environment and an optional .env file. Flags win
// over every value here.
type Config struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
	Lang         string `env:"REGEXM_LANG" envDefault:"pt-BR"`
	BatchWorkers int    `env:"REGEXM_BATCH_WORKERS" envDefault:"4"`

	// NoColor follows the no-color.org convention: any value disables color.
	NoColor string `env:"NO_COLOR"`
}
