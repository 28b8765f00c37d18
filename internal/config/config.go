package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"exportcheck/internal/schema"
)

// Config holds all runtime configuration for an exportcheck run.
type Config struct {
	Dir        string   // directory containing the exported files
	Prefixes   []string // explicit prefixes; empty means discover
	LogFormat  string   // "text" or "json"
	Verbose    bool
	SchemaFile string

	CheckDuplicateLines bool // enable the duplicate-consecutive-line check
	CheckMissing        bool // enable the missing-expected-file check

	Catalog schema.Catalog
}

// yamlSchema is the on-disk YAML structure for a catalog override.
type yamlSchema struct {
	Tables []schema.Table `yaml:"tables"`
}

// LoadSchemaFile replaces the catalog with the tables listed in a YAML
// file. An empty table list keeps the current catalog.
func (c *Config) LoadSchemaFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read schema file: %w", err)
	}
	var ys yamlSchema
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return fmt.Errorf("parse schema file: %w", err)
	}
	if len(ys.Tables) == 0 {
		return nil
	}
	cat := schema.Catalog(ys.Tables)
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("schema file %s: %w", path, err)
	}
	c.Catalog = cat
	return nil
}

// ValidateLogFormat checks the log format alone, so callers can reject
// it before constructing a logger from it.
func (c *Config) ValidateLogFormat() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be \"text\" or \"json\", got %q", c.LogFormat)
	}
	return nil
}

// Validate checks required fields and defaults the catalog. Returns an
// error if the config is invalid.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("path argument is required")
	}
	if err := c.ValidateLogFormat(); err != nil {
		return err
	}
	if c.Catalog == nil {
		c.Catalog = schema.Default()
	}
	return c.Catalog.Validate()
}
