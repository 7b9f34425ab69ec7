package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/b2-screenshot/b2-screenshot/uploaders"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/joho/godotenv"
)

// Config ...
type Config struct {
	KeyID       string          `env:"B2_KEY_ID,required"`
	Key         stepconf.Secret `env:"B2_KEY,required"`
	BucketName  string          `env:"B2_BUCKET_NAME"`
	Author      string          `env:"B2_AUTHOR"`
	AuthURL     string          `env:"B2_AUTH_URL"`
	RetryMax    int             `env:"B2_RETRY_MAX"`
	HTTPTimeout int             `env:"B2_HTTP_TIMEOUT"`
}

func defaultConfig() Config {
	return Config{
		Author:  "unknown",
		AuthURL: uploaders.DefaultAuthURL,
	}
}

func parseConfig(envRepo env.Repository) (Config, error) {
	config := defaultConfig()
	if err := stepconf.NewInputParser(envRepo).Parse(&config); err != nil {
		return Config{}, err
	}

	if config.RetryMax < 0 {
		return Config{}, fmt.Errorf("B2_RETRY_MAX should not be negative: %d", config.RetryMax)
	}
	if config.HTTPTimeout < 0 {
		return Config{}, fmt.Errorf("B2_HTTP_TIMEOUT should not be negative: %d", config.HTTPTimeout)
	}

	return config, nil
}

func (c Config) uploaderConfig(urlStyle uploaders.URLStyle) uploaders.Config {
	return uploaders.Config{
		Credentials: uploaders.Credentials{
			KeyID: c.KeyID,
			Key:   c.Key,
		},
		BucketName:  c.BucketName,
		Author:      c.Author,
		AuthURL:     c.AuthURL,
		URLStyle:    urlStyle,
		RetryMax:    c.RetryMax,
		HTTPTimeout: time.Duration(c.HTTPTimeout) * time.Second,
	}
}

// loadEnvFile copies the values of a dotenv file into the env repository.
// Variables already set in the environment win; a missing file is not an error.
func loadEnvFile(envRepo env.Repository, pth string) (int, error) {
	if pth == "" {
		return 0, nil
	}

	values, err := godotenv.Read(pth)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read env file (%s): %w", pth, err)
	}

	loaded := 0
	for key, value := range values {
		if envRepo.Get(key) != "" {
			continue
		}
		if err := envRepo.Set(key, value); err != nil {
			return loaded, fmt.Errorf("failed to set %s: %w", key, err)
		}
		loaded++
	}

	return loaded, nil
}
