package cmd

import (
	"path/filepath"
	"strings"

	"tabload/tabular"
)

// resolveInputFormat picks the format for a file: an explicit --type flag
// wins, then the file extension, then the configured default.
func resolveInputFormat(flagValue, path, configDefault string) (tabular.Format, error) {
	if strings.TrimSpace(flagValue) != "" {
		return tabular.ParseFormat(flagValue)
	}
	if format, ok := tabular.DetectFormat(path); ok {
		return format, nil
	}
	return tabular.ParseFormat(configDefault)
}

// defaultTableName derives a SQLite table name from the input file:
// basename without extension, non-alphanumeric runs collapsed to
// underscores.
func defaultTableName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var builder strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(base) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		switch {
		case alnum:
			builder.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore && builder.Len() > 0:
			builder.WriteRune('_')
			lastUnderscore = true
		}
	}

	name := strings.Trim(builder.String(), "_")
	if name == "" {
		return "dataset"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "t_" + name
	}
	return name
}
