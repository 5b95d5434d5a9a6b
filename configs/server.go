package configs

import "fmt"

type Server struct {
	Port    int    `env:"SERVER_PORT" envDefault:"8080"`
	BaseURL string `env:"BASE_URL"`
}

func (c Server) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
