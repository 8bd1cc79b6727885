package config

import (
	"reflect"
	"strings"

	"hyprstash/internal/domain"
	"hyprstash/internal/logging"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName != "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return logging.DefaultMaxLogFiles
			case "stash_location":
				return int(domain.DefaultStashLocation)
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "on_conflict":
			return string(domain.ConflictReject)
		case "stash_dir":
			return "~/.cache/hyprstash"
		default:
			return "example"
		}
	}

	return nil
}
