/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package client

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	errs "github.com/suparena/ddbcompat/errors"
)

// Defaults match the original harness: a LocalStack-style endpoint with
// fixed throwaway credentials and a long read timeout.
const (
	DefaultEndpoint           = "http://localhost:4566"
	DefaultRegion             = "us-east-1"
	DefaultAccessKey          = "test"
	DefaultSecretKey          = "test"
	DefaultReadTimeoutSeconds = 300
)

// Config describes the endpoint under test.
type Config struct {
	// Endpoint is the DynamoDB-compatible endpoint URL. Ignored when AWS
	// is set.
	Endpoint string `yaml:"endpoint"`
	// Region is the AWS region name sent with every request.
	Region string `yaml:"region"`
	// AccessKey and SecretKey are the static credentials used against an
	// emulator endpoint. Ignored when AWS is set, where the default
	// credential chain applies.
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	// AWS runs the harness against real AWS DynamoDB instead of an
	// emulator endpoint.
	AWS bool `yaml:"aws"`
	// ReadTimeoutSeconds bounds each HTTP request.
	ReadTimeoutSeconds int `yaml:"readTimeoutSeconds"`
}

// DefaultConfig returns the configuration for a local emulator endpoint.
func DefaultConfig() Config {
	return Config{
		Endpoint:           DefaultEndpoint,
		Region:             DefaultRegion,
		AccessKey:          DefaultAccessKey,
		SecretKey:          DefaultSecretKey,
		ReadTimeoutSeconds: DefaultReadTimeoutSeconds,
	}
}

// FromEnv resolves configuration from a .env file (if present) and process
// environment variables, starting from defaults. Recognized variables:
// DDBCOMPAT_ENDPOINT, DDBCOMPAT_REGION, DDBCOMPAT_ACCESS_KEY,
// DDBCOMPAT_SECRET_KEY, DDBCOMPAT_AWS, DDBCOMPAT_READ_TIMEOUT_SECONDS.
func FromEnv() (Config, error) {
	// A missing .env file is fine; explicit environment variables still apply.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv("DDBCOMPAT_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("DDBCOMPAT_REGION"); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv("DDBCOMPAT_ACCESS_KEY"); v != "" {
		cfg.AccessKey = v
	}
	if v := os.Getenv("DDBCOMPAT_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("DDBCOMPAT_AWS"); v != "" {
		aws, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errs.NewConfigError("DDBCOMPAT_AWS", fmt.Sprintf("not a boolean: %q", v))
		}
		cfg.AWS = aws
	}
	if v := os.Getenv("DDBCOMPAT_READ_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errs.NewConfigError("DDBCOMPAT_READ_TIMEOUT_SECONDS", fmt.Sprintf("not an integer: %q", v))
		}
		cfg.ReadTimeoutSeconds = secs
	}
	return cfg, nil
}

// FromFile loads configuration from a YAML file, filling unset fields from
// defaults.
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if c.Region == "" {
		return errs.NewConfigError("region", "must not be empty")
	}
	if c.ReadTimeoutSeconds < 0 {
		return errs.NewConfigError("readTimeoutSeconds", "must not be negative")
	}
	if c.AWS {
		return nil
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errs.NewConfigError("endpoint", fmt.Sprintf("must be a URL, got %q", c.Endpoint))
	}
	return nil
}

// IsAWS reports whether the harness targets real AWS DynamoDB, either by
// explicit configuration or because the endpoint host is an amazonaws.com
// host.
func (c Config) IsAWS() bool {
	if c.AWS {
		return true
	}
	return IsAWSEndpoint(c.Endpoint)
}

// IsAWSEndpoint reports whether the endpoint URL points at the real AWS
// DynamoDB service.
func IsAWSEndpoint(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return strings.HasSuffix(u.Hostname(), ".amazonaws.com")
}
