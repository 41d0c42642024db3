// Package config defines the JSON-serializable job model for the roster
// cleaner. A job file names the three I/O paths and carries the two
// declarative pipeline tables (header aliases, reachability groups)
// plus optional storage and metrics blocks.
//
// Decoding is performed by the standard library; the model is kept
// small and explicit so job files can be loaded from disk and passed
// through the program without additional glue code.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Job describes one cleaning run.
type Job struct {
	// Name labels the run for logs and metrics. Defaults to "roster_clean".
	Name string `json:"name"`

	// Input, Output, and Report are the three external paths: the raw
	// roster, the cleaned roster, and the HTML validation report.
	Input  string `json:"input"`
	Output string `json:"output"`
	Report string `json:"report"`

	// Delimiter is the CSV field separator; first rune is used. "," when empty.
	Delimiter string `json:"delimiter,omitempty"`

	// NAValues are cell spellings collapsed to absent on read. When nil,
	// the reader default ("", "NA", "NaN") applies.
	NAValues []string `json:"na_values,omitempty"`

	// Aliases are extra header aliases merged over the built-in table.
	Aliases map[string]string `json:"aliases,omitempty"`

	// Reachability lists any-of field groups a row must satisfy. nil
	// keeps the default ({email, phone}); an empty list disables the filter.
	Reachability [][]string `json:"reachability,omitempty"`

	// Storage optionally loads the cleaned roster into a database.
	Storage Storage `json:"storage,omitempty"`

	// Metrics selects a metrics backend.
	Metrics Metrics `json:"metrics,omitempty"`
}

// Storage configures the optional database sink. Kind "" disables it.
type Storage struct {
	// Kind selects the backend: "postgres", "sqlite", or "" for none.
	Kind string `json:"kind,omitempty"`

	// DSN is the backend connection string.
	DSN string `json:"dsn,omitempty"`

	// Table is the destination table name.
	Table string `json:"table,omitempty"`

	// AutoCreateTable creates the destination table if missing.
	AutoCreateTable bool `json:"auto_create_table,omitempty"`
}

// Metrics configures the optional metrics backend.
type Metrics struct {
	// Backend is "pushgateway" or "none"/"".
	Backend string `json:"backend,omitempty"`

	// PushgatewayURL is the Pushgateway base URL.
	PushgatewayURL string `json:"pushgateway_url,omitempty"`
}

// Default paths used when neither the job file nor flags provide them.
const (
	DefaultInput  = "data/raw_clients.csv"
	DefaultOutput = "data/clean_clients.csv"
	DefaultReport = "output/validation_report.html"
)

// Load reads and decodes a job file from path.
func Load(path string) (Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return Job{}, fmt.Errorf("open job file: %w", err)
	}
	defer f.Close()

	var j Job
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&j); err != nil {
		return Job{}, fmt.Errorf("decode job file %s: %w", path, err)
	}
	return j, nil
}

// ApplyDefaults fills unset fields with their defaults.
func (j *Job) ApplyDefaults() {
	if j.Name == "" {
		j.Name = "roster_clean"
	}
	if j.Input == "" {
		j.Input = DefaultInput
	}
	if j.Output == "" {
		j.Output = DefaultOutput
	}
	if j.Report == "" {
		j.Report = DefaultReport
	}
}

// DelimiterRune returns the configured delimiter as a rune, or ','.
func (j Job) DelimiterRune() rune {
	if j.Delimiter == "" {
		return ','
	}
	return []rune(j.Delimiter)[0]
}
