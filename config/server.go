package config

import "os"

type ServerConfig struct {
	Port           string
	WorkerPoolSize int
	GinMode        string
	LogLevel       string
	LogFormat      string
	// JwksURL enables JWT authentication when set.
	JwksURL string
}

func GetServerConfig() (*ServerConfig, error) {
	poolSize, err := getEnvInt("WORKER_POOL_SIZE", 120)
	if err != nil {
		return nil, err
	}
	if poolSize == 0 {
		poolSize = 120
	}

	return &ServerConfig{
		Port:           getEnvDefault("PORT", "8080"),
		WorkerPoolSize: poolSize,
		GinMode:        getEnvDefault("GIN_MODE", "release"),
		LogLevel:       getEnvDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvDefault("LOG_FORMAT", "json"),
		JwksURL:        os.Getenv("JWKS_URL"),
	}, nil
}
