// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package config

import (
	"encoding/json"
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func modifyFromJson(cfg mutableHostConfig, source string) error {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(source), &data); err != nil {
		return errors.Wrap(err, "could not parse json config")
	}

	return populateConfig(cfg, data)
}

func modifyFromToml(cfg mutableHostConfig, source string) error {
	var data map[string]interface{}
	if _, err := toml.Decode(source, &data); err != nil {
		return errors.Wrap(err, "could not parse toml config")
	}

	return populateConfig(cfg, data)
}

func convertKeyName(key string) string {
	return strings.ToUpper(strings.Replace(key, "-", "_", -1))
}

func populateConfig(cfg mutableHostConfig, data map[string]interface{}) error {
	for key, value := range data {
		switch v := value.(type) {
		case float64:
			if v < 0 || v > float64(^uint32(0)) {
				return errors.Errorf("config key %s value %v is out of range", key, v)
			}
			if v != math.Trunc(v) {
				return errors.Errorf("config key %s value %v is not a whole number", key, v)
			}
			cfg.SetUint32(convertKeyName(key), uint32(v))
		case int64:
			if v < 0 || v > int64(^uint32(0)) {
				return errors.Errorf("config key %s value %v is out of range", key, v)
			}
			cfg.SetUint32(convertKeyName(key), uint32(v))
		case string:
			if duration, decodeError := time.ParseDuration(v); decodeError != nil {
				cfg.SetString(convertKeyName(key), v)
			} else {
				cfg.SetDuration(convertKeyName(key), duration)
			}
		default:
			return errors.Errorf("config key %s has unsupported value type %T", key, value)
		}
	}

	return nil
}

// For main reading several files into one config

type FilesPaths []string

func (i *FilesPaths) String() string {
	return strings.Join(*i, ",")
}

func (i *FilesPaths) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// GetHostConfigFromFiles applies the files in order over the production defaults.
// Files ending in .toml are read as TOML, everything else as JSON.
func GetHostConfigFromFiles(configFiles FilesPaths) (HostConfig, error) {
	cfg := ForProduction("")

	for _, configFile := range configFiles {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return nil, errors.Errorf("could not open config file: %s", err)
		}

		contents, err := ioutil.ReadFile(configFile)
		if err != nil {
			return nil, err
		}

		if filepath.Ext(configFile) == ".toml" {
			err = modifyFromToml(cfg, string(contents))
		} else {
			err = modifyFromJson(cfg, string(contents))
		}
		if err != nil {
			return nil, errors.Wrapf(err, "config file %s", configFile)
		}
	}

	return cfg, nil
}
