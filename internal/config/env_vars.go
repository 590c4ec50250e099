package config

import (
	"os"
	"strconv"
)

const (
	appNameVar     = "APP_NAME"
	apiURLVar      = "AUTOLIFE_API_URL"
	dataFolderVar  = "AUTOLIFE_DATA_DIR"
	httpTimeoutVar = "HTTP_TIMEOUT"
	metricsAddrVar = "METRICS_ADDR"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "AutoLife")
}

// GetAPIBaseURL returns the base URL of the AutoLife REST backend.
func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiURLVar, "http://localhost:5000/api")
}

// GetDataFolder returns where the session and preference files live.
func (EnvVars) GetDataFolder() string {
	if folder := os.Getenv(dataFolderVar); folder != "" {
		return folder
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return configDir + "/autolife"
	}
	return "./data"
}

func (EnvVars) GetHTTPTimeoutSeconds() int {
	raw := GetEnv(httpTimeoutVar, "15")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 15
	}
	return seconds
}

// GetMetricsAddr returns the local Prometheus listen address, or "" when
// metrics exposure is disabled.
func (EnvVars) GetMetricsAddr() string {
	return GetEnv(metricsAddrVar, "")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
