package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadSecretsFile merges a JSON document of key/value pairs into the process
// environment so LoadConfig can read them. Keys are uppercased; variables
// already present in the environment win. Called explicitly once at startup,
// before LoadConfig. An empty path is a no-op.
func LoadSecretsFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading secrets file: %w", err)
	}

	var secrets map[string]interface{}
	if err := json.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("secrets file %s is not a JSON object: %w", path, err)
	}

	loaded := make(map[string]string)
	for key, value := range secrets {
		var strValue string
		switch v := value.(type) {
		case string:
			strValue = v
		case nil:
			strValue = ""
		default:
			// Nested values are kept as their JSON encoding
			raw, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("encoding secret %q: %w", key, err)
			}
			strValue = string(raw)
		}

		name := strings.ToUpper(key)
		if _, exists := os.LookupEnv(name); exists {
			continue
		}
		if err := os.Setenv(name, strValue); err != nil {
			return nil, fmt.Errorf("setting %s: %w", name, err)
		}
		loaded[name] = strValue
	}
	return loaded, nil
}
