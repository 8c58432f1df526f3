package config

import "cuelang.org/go/cue"

func parseCompilerSection(v cue.Value, c *Compiler) error {
	fields := []struct {
		path string
		dst  *string
	}{
		{"compiler.name", &c.Name},
		{"compiler.envVar", &c.EnvVar},
		{"compiler.versionFlag", &c.VersionFlag},
		{"compiler.minVersion", &c.MinVersion},
		{"compiler.testDefine", &c.TestDefine},
	}
	for _, f := range fields {
		if err := optString(v, f.path, f.dst); err != nil {
			return err
		}
	}
	return optStringList(v, "compiler.altNames", &c.AltNames)
}

func parseInstallerSection(v cue.Value, c *Config) error {
	fields := []struct {
		path string
		dst  *string
	}{
		{"installer.script", &c.Installer.Script},
		{"installer.output", &c.Installer.Output},
		{"installer.testOutput", &c.Installer.TestOutput},
		{"executable", &c.Executable},
	}
	for _, f := range fields {
		if err := optString(v, f.path, f.dst); err != nil {
			return err
		}
	}
	return optStringList(v, "prerequisite", &c.Prerequisite)
}

func parseVerifySection(v cue.Value, c *Verify) error {
	fields := []struct {
		path string
		dst  *string
	}{
		{"verify.dataPath", &c.DataPath},
		{"verify.expect", &c.Expect},
		{"verify.installDirName", &c.InstallDirName},
		{"verify.exeName", &c.ExeName},
		{"verify.silentFlag", &c.SilentFlag},
		{"verify.dirFlag", &c.DirFlag},
	}
	for _, f := range fields {
		if err := optString(v, f.path, f.dst); err != nil {
			return err
		}
	}
	return nil
}
