package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HttpPort    uint16 `envconfig:"PATIENT_MGMT_HTTP_SERVER_PORT" default:"8080" required:"true"`
	CorsOrigins string `envconfig:"PATIENT_MGMT_CORS_ORIGINS" default:"*"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}
