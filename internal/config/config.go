// Package config provides application configuration management.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/oszuidwest/zwfm-pagegen/internal/util"
)

// Configuration defaults are used when values are not specified.
const (
	DefaultFileName  = "config.json" // Looked up next to the binary
	DefaultOutputDir = "../pages"    // Relative to the binary's directory
)

// OutputConfig holds where generated headers are written.
type OutputConfig struct {
	Dir string `json:"dir" validate:"required,max=4096"` // Output directory (relative paths resolve against the binary)
}

// LogConfig holds build log settings.
type LogConfig struct {
	Path string `json:"path" validate:"omitempty,max=4096"` // JSON lines build log (empty = disabled)
}

// UploadConfig holds S3-compatible storage settings for publishing headers.
type UploadConfig struct {
	Endpoint        string `json:"endpoint" validate:"omitempty,url,max=2048"`                // Custom S3 endpoint (empty for AWS)
	Bucket          string `json:"bucket" validate:"omitempty,min=3,max=63"`                  // Bucket name
	AccessKeyID     string `json:"access_key_id" validate:"required_with=Bucket,max=128"`     // Access key ID
	SecretAccessKey string `json:"secret_access_key" validate:"required_with=Bucket,max=256"` // Secret access key
	Prefix          string `json:"prefix" validate:"omitempty,max=512"`                       // Key prefix inside the bucket
}

// IsConfigured reports whether uploads are enabled.
func (u *UploadConfig) IsConfigured() bool {
	return util.IsConfigured(u.Bucket, u.AccessKeyID, u.SecretAccessKey)
}

// Config holds all application configuration.
type Config struct {
	Output     OutputConfig `json:"output"`
	Log        LogConfig    `json:"log"`
	Upload     UploadConfig `json:"upload"`
	MinVersion string       `json:"min_version" validate:"omitempty,version"` // Oldest build allowed to use this config

	filePath string
}

// New creates a new Config with default values.
func New(filePath string) *Config {
	return &Config{
		Output:   OutputConfig{Dir: DefaultOutputDir},
		filePath: filePath,
	}
}

// Load reads config from file. A missing file leaves the defaults in place.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return util.WrapError("parse config", err)
	}

	c.applyDefaults()

	return c.validate()
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.filePath
}

// OutputDir returns the output directory resolved against baseDir.
func (c *Config) OutputDir(baseDir string) string {
	return util.ResolveFrom(baseDir, c.Output.Dir)
}

// LogPath returns the build log path resolved against baseDir, or "" when disabled.
func (c *Config) LogPath(baseDir string) string {
	if c.Log.Path == "" {
		return ""
	}
	return util.ResolveFrom(baseDir, c.Log.Path)
}

// applyDefaults sets default values for zero-value fields.
func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
}
