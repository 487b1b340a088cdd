package domain

import "time"

// RawRule is one rule declaration read from a build file. Attribute values are
// plain Go values: string, bool, float64, []any or map[string]any.
type RawRule struct {
	Type       string         `json:"type"`
	Name       string         `json:"name"`
	BasePath   string         `json:"base_path"`
	BuildFile  string         `json:"-"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// BuildFileManifest is the result of parsing one build file.
type BuildFileManifest struct {
	Path     string    `json:"path"`
	Syntax   Syntax    `json:"syntax"`
	Rules    []RawRule `json:"rules"`
	Includes []string  `json:"includes,omitempty"`
}

// ParseProfile records the time spent on one build file.
type ParseProfile struct {
	Path     string
	Syntax   Syntax
	Rules    int
	Duration time.Duration
}
