package main

import (
	"errors"
	"path/filepath"

	"github.com/theimaginaryfoundation/party-survey/survey"
)

type Config struct {
	DataPath    string
	PrintSchema bool
	Verbose     bool
}

func (c Config) Validate() error {
	if c.DataPath == "" {
		return errors.New("missing -data")
	}
	if err := survey.CheckPath(c.DataPath); err != nil {
		return err
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		DataPath: filepath.FromSlash(survey.DefaultDataPath),
	}
}
