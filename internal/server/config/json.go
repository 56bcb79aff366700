package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ecotracker/internal/flagx"
	"github.com/dmitrijs2005/ecotracker/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Durations accept
// both "15m" strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	ReportURLValidityDuration    timex.Duration `json:"report_url_validity_duration"`
	FactorsFile                  string         `json:"factors_file"`
	NetPolicy                    string         `json:"net_policy"`
	LogLevel                     string         `json:"log_level"`
	LogFormat                    string         `json:"log_format"`
	ShutdownTimeout              timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays the JSON file named by -c/-config (or ECOTRACKER_CONFIG)
// onto config. Keys missing from the file keep their current values.
// An unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFilePath()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := toJson(config)
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.ReportURLValidityDuration = c.ReportURLValidityDuration.Duration
	config.FactorsFile = c.FactorsFile
	config.NetPolicy = c.NetPolicy
	config.LogLevel = c.LogLevel
	config.LogFormat = c.LogFormat
	config.ShutdownTimeout = c.ShutdownTimeout.Duration
}

func toJson(c *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC:             c.EndpointAddrGRPC,
		EndpointAddrHTTP:             c.EndpointAddrHTTP,
		DatabaseDSN:                  c.DatabaseDSN,
		SecretKey:                    c.SecretKey,
		AccessTokenValidityDuration:  timex.Duration{Duration: c.AccessTokenValidityDuration},
		RefreshTokenValidityDuration: timex.Duration{Duration: c.RefreshTokenValidityDuration},
		S3RootUser:                   c.S3RootUser,
		S3RootPassword:               c.S3RootPassword,
		S3Bucket:                     c.S3Bucket,
		S3Region:                     c.S3Region,
		S3BaseEndpoint:               c.S3BaseEndpoint,
		ReportURLValidityDuration:    timex.Duration{Duration: c.ReportURLValidityDuration},
		FactorsFile:                  c.FactorsFile,
		NetPolicy:                    c.NetPolicy,
		LogLevel:                     c.LogLevel,
		LogFormat:                    c.LogFormat,
		ShutdownTimeout:              timex.Duration{Duration: c.ShutdownTimeout},
	}
}
