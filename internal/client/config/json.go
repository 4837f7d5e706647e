package config

import (
	"encoding/json"
	"os"

	"github.com/RichiMaiden/menacor-vital/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// keep the values from earlier configuration stages.
type JsonConfig struct {
	BackendBaseURL *string `json:"backend_base_url"`
	DBPath         *string `json:"db_path"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. When no file is named, nothing happens. Read or parse
// failures panic: a config file that exists but cannot be used is a startup
// defect, not a condition to limp through.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != nil {
		cfg.BackendBaseURL = *jc.BackendBaseURL
	}
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
}
