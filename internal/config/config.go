// Package config loads packaging settings from an optional CUE file. Every
// field has a built-in default so a checkout without packaging.cue works.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"cuelang.org/go/cue"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "packaging.cue"

var minVersionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// Compiler describes the installer compiler executable.
type Compiler struct {
	Name        string
	AltNames    []string
	EnvVar      string
	VersionFlag string
	MinVersion  string
	TestDefine  string
}

// Installer holds the installer script and its two output locations.
type Installer struct {
	Script     string
	Output     string
	TestOutput string
}

// Verify holds the acceptance check and silent install settings.
type Verify struct {
	DataPath       string
	Expect         string
	InstallDirName string
	ExeName        string
	SilentFlag     string
	DirFlag        string
}

// Config is the full packaging configuration.
type Config struct {
	ConfigVersion string
	Compiler      Compiler
	Installer     Installer
	Executable    string
	Prerequisite  []string
	Verify        Verify
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Compiler: Compiler{
			Name:        "makensis.exe",
			AltNames:    []string{"makensis"},
			EnvVar:      "MAKENSIS_PATH",
			VersionFlag: "/VERSION",
			MinVersion:  "3.11",
			TestDefine:  "/DTEST_MODE=1",
		},
		Installer: Installer{
			Script:     "installer/pyhelloworld.nsi",
			Output:     "dist/pyhelloworld-installer.exe",
			TestOutput: "dist/pyhelloworld-test-installer.exe",
		},
		Executable:   "dist/pyhelloworld.exe",
		Prerequisite: []string{"make", "windows-build"},
		Verify: Verify{
			DataPath:       "data.txt",
			Expect:         "Hello world",
			InstallDirName: "pyhelloworld",
			ExeName:        "pyhelloworld.exe",
			SilentFlag:     "/S",
			DirFlag:        "/D=",
		},
	}
}

// OutputFor returns the installer path for the selected mode.
func (c Config) OutputFor(testMode bool) string {
	if testMode {
		return c.Installer.TestOutput
	}
	return c.Installer.Output
}

// Load reads path and overlays its values on Default. When optional is true a
// missing file yields Default without error.
func Load(path string, optional bool) (Config, error) {
	if optional {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
	}
	v, err := compileCUE(path)
	if err != nil {
		return Config{}, err
	}
	return parse(v)
}

func parse(v cue.Value) (Config, error) {
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}
	c := Default()
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&c.ConfigVersion); err != nil {
		return Config{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if !IsSupportedConfigVersion(c.ConfigVersion) {
		return Config{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)", c.ConfigVersion, SupportedConfigVersionsCSV())
	}
	if err := parseCompilerSection(v, &c.Compiler); err != nil {
		return Config{}, err
	}
	if err := parseInstallerSection(v, &c); err != nil {
		return Config{}, err
	}
	if err := parseVerifySection(v, &c.Verify); err != nil {
		return Config{}, err
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if !minVersionPattern.MatchString(c.Compiler.MinVersion) {
		return fmt.Errorf("invalid compiler.minVersion: %q (expected <major>.<minor>)", c.Compiler.MinVersion)
	}
	if c.Compiler.Name == "" {
		return errors.New("invalid compiler.name: must not be empty")
	}
	if len(c.Prerequisite) == 0 {
		return errors.New("invalid prerequisite: expected a non-empty command")
	}
	return nil
}
