// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/ccwallet/backend"
	"github.com/bitmark-inc/ccwallet/chain"
	"github.com/bitmark-inc/ccwallet/fault"
	"github.com/bitmark-inc/ccwallet/fetcher"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultBitcoinDatabase  = chain.Bitcoin + ".leveldb"
	defaultTestnetDatabase  = chain.Testnet + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "ccwallet.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// a fresh map each time as decoding merges into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "warn",
	}
}

// DatabaseType - location of the wallet database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string                `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                `gluamapper:"pidfile" json:"pidfile"`
	Chain         string                `gluamapper:"chain" json:"chain"`
	Database      DatabaseType          `gluamapper:"database" json:"database"`
	Fetcher       fetcher.Configuration `gluamapper:"fetcher" json:"fetcher"`
	Logging       logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// Testnet - true if the configured chain is a test network
func (c *Configuration) Testnet() bool {
	return chain.IsTestnet(c.Chain)
}

// GetConfiguration - read, decode and verify the configuration
//
// relative paths are made absolute and the database and log
// directories are created
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Bitcoin,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultBitcoinDatabase,
		},

		Fetcher: fetcher.Configuration{
			Backend:   backend.Default,
			Interval:  int(fetcher.DefaultInterval.Seconds()),
			SelfDrain: true,
			Electrum: backend.ElectrumConfiguration{
				Server: backend.DefaultElectrumServer,
				Port:   backend.DefaultElectrumPort,
			},
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidChain, options.Chain)
	}

	// abort on an unknown backend before anything is opened
	options.Fetcher.Backend = backend.Canonical(options.Fetcher.Backend)
	if !backend.Valid(options.Fetcher.Backend) {
		return nil, fmt.Errorf("%w: %q", fault.ErrUnknownBackend, options.Fetcher.Backend)
	}

	// if database was not changed from default
	if options.Database.Name == defaultBitcoinDatabase && chain.Testnet == options.Chain {
		options.Database.Name = defaultTestnetDatabase
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidDataDirectory, options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", fault.ErrInvalidDataDirectory, options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	if "" != options.PidFile {
		mustBeAbsolute = append(mustBeAbsolute, &options.PidFile)
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = ensureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("%w: file: %q is not plain name", fault.ErrInvalidDataDirectory, *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{options.Database.Directory, options.Logging.Directory} {
		if err := os.MkdirAll(d, 0o700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// Backend - create the configured blockchain data backend
//
// no network activity takes place until the first request
func (c *Configuration) Backend() (backend.Backend, error) {
	return backend.New(c.Fetcher.Backend, c.Testnet(), c.Fetcher.Backends())
}
