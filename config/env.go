// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const EnvPrefix = "XCM"

const defaultsEnv = EnvPrefix + "_DEFAULTS"

func loadFromEnv() (RawConfig, error) {
	rawConfig := RawConfig{}

	err := decode(loadENVToStructure(), &rawConfig.Settings)
	if err != nil {
		return RawConfig{}, err
	}

	if rawDefaults := os.Getenv(defaultsEnv); rawDefaults != "" {
		err = json.Unmarshal([]byte(rawDefaults), &rawConfig.Defaults)
		if err != nil {
			return RawConfig{}, fmt.Errorf("invalid %s: %w", defaultsEnv, err)
		}
	}

	rawConfig.Chains, err = loadList("CHAIN")
	if err != nil {
		return RawConfig{}, err
	}
	rawConfig.Assets, err = loadList("ASSET")
	if err != nil {
		return RawConfig{}, err
	}
	rawConfig.Transfers, err = loadList("TRANSFER")
	if err != nil {
		return RawConfig{}, err
	}

	return rawConfig, nil
}

// loadList reads one json document per variable, XCM_CHAIN_1, XCM_CHAIN_2...
// until the first missing index.
func loadList(name string) ([]map[string]interface{}, error) {
	list := make([]map[string]interface{}, 0)
	index := 1
	for {
		variable := fmt.Sprintf("%s_%s_%d", EnvPrefix, name, index)
		raw := os.Getenv(variable)
		if raw == "" {
			break
		}

		var entry map[string]interface{}
		err := json.Unmarshal([]byte(raw), &entry)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", variable, err)
		}
		list = append(list, entry)
		index++
	}
	return list, nil
}

// loadENVToStructure mounts XCM_SETTINGS_* variables into a nested map,
// XCM_SETTINGS_RETRYCONFIG_ATTEMPTS becomes {"RETRYCONFIG": {"ATTEMPTS": v}}.
func loadENVToStructure() map[string]interface{} {
	structure := map[string]interface{}{}
	prefix := EnvPrefix + "_SETTINGS_"
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, prefix) {
			continue
		}

		pair := strings.SplitN(e, "=", 2)
		indexes := strings.Split(strings.TrimPrefix(pair[0], prefix), "_")
		mountMap(structure, indexes, pair[1])
	}
	return structure
}

func mountMap(m map[string]interface{}, i []string, v interface{}) {
	if len(i) > 1 {
		if _, ok := m[i[0]]; !ok {
			m[i[0]] = map[string]interface{}{}
		}
		asMap, ok := m[i[0]].(map[string]interface{})
		if !ok {
			return
		}
		mountMap(asMap, i[1:], v)
		v = asMap
	}
	m[i[0]] = v
}
