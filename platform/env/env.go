package env

import (
	"os"

	"go.uber.org/zap"
)

// OrDefault return the value of an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	log.Debug("env ", env, " not set, using default")
	return def
}

// Must return the value of an env var, stopping the process if the env var is empty
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatalw("startup", "ERROR", "missing required env var", "env", env)
	}
	return v
}
