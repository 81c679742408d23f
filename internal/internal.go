// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFile return the path to configuration file under
// [os.UserConfigDir] + "linkcheck" directory.
// This variable defined here so the test file can override it.
var ConfigFile = DefaultConfigFile

func DefaultConfigFile() (configFile string, err error) {
	var logp = `DefaultConfigFile`
	var configDir string

	configDir, err = os.UserConfigDir()
	if err != nil {
		return ``, fmt.Errorf(`%s: %w`, logp, err)
	}

	configFile = filepath.Join(configDir, `linkcheck`, `linkcheck.conf`)
	return configFile, nil
}
