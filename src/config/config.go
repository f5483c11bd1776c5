// Package config reads the settings file shared by the zip-inventory commands
package config

import (
	"fmt"
	"path/filepath"

	"github.com/uoregon-libraries/gopkg/bashconf"
	"github.com/uoregon-libraries/gopkg/fileutil"
)

// Config holds the archive to inventory and where its output goes
type Config struct {
	ArchivePath       string `setting:"ARCHIVE_PATH"`
	RootPrefix        string `setting:"ROOT_PREFIX"`
	OutputDir         string `setting:"OUTPUT_DIR"`
	TableFormat       TableFormat
	TableFormatString string `setting:"TABLE_FORMAT"`
	DatabasePath      string `setting:"DATABASE_PATH"`
}

// Read opens the given file and reads its configuration.  Any setting may be
// overridden by an environment variable of the same name prefixed with "ZI_".
func Read(filename string) (*Config, error) {
	var conf = bashconf.New()
	conf.EnvironmentPrefix("ZI_")

	var err = conf.ParseFile(filename)
	if err != nil {
		return nil, err
	}
	var c = &Config{}
	err = conf.Store(c)
	if err != nil {
		return nil, err
	}

	err = c.validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// validate checks the settings which bashconf can't, and fills in derived
// values
func (c *Config) validate() error {
	var err error
	c.TableFormat, err = parseTableFormat(c.TableFormatString)
	if err != nil {
		return fmt.Errorf("invalid TABLE_FORMAT %q: %s", c.TableFormatString, err)
	}

	if c.ArchivePath == "" {
		return fmt.Errorf("ARCHIVE_PATH must be set")
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if !fileutil.IsDir(c.OutputDir) {
		return fmt.Errorf("invalid OUTPUT_DIR %q: not a directory", c.OutputDir)
	}
	if c.TableFormat == SQLite && c.DatabasePath == "" {
		return fmt.Errorf(`DATABASE_PATH must be set when TABLE_FORMAT is "sqlite"`)
	}

	return nil
}

// ArchiveName is the archive's file name, used to label stored inventories
func (c *Config) ArchiveName() string {
	return filepath.Base(c.ArchivePath)
}
