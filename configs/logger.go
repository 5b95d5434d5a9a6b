package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"bettermeet"`
	URL     string `env:"LOGGER_URL"`
}
