package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ecotracker/internal/flagx"
	"github.com/dmitrijs2005/ecotracker/internal/timex"
)

// JsonConfig is the on-disk shape of the CLI config.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	DatabaseFile       string         `json:"database_file"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	DownloadDir        string         `json:"download_dir"`
}

// parseJson overlays cfg with the JSON file named by -c/-config (or
// ECOTRACKER_CONFIG). Keys missing from the file keep their current values.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFilePath()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	jc := JsonConfig{
		ServerEndpointAddr: cfg.ServerEndpointAddr,
		DatabaseFile:       cfg.DatabaseFile,
		RequestTimeout:     timex.Duration{Duration: cfg.RequestTimeout},
		DownloadDir:        cfg.DownloadDir,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.DatabaseFile = jc.DatabaseFile
	cfg.RequestTimeout = jc.RequestTimeout.Duration
	cfg.DownloadDir = jc.DownloadDir
}
