package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths is the file layout the configurator works on. It is resolved once at
// startup and passed down explicitly.
type Paths struct {
	Home          string
	RCFile        string
	ProfileFile   string
	DataDir       string
	CacheDir      string
	ThemesDir     string
	PluginsDir    string
	ColorsDir     string
	ScratchSuffix string
}

// Resolve fills every path, defaulting to the shell's standard locations
// under the home directory. An unset $HOME falls back to /tmp.
func (c Config) Resolve() Paths {
	home := c.Paths.Home
	if home == "" {
		home = os.Getenv("HOME")
	}
	if home == "" {
		home = "/tmp"
	}
	pick := func(configured, fallback string) string {
		if configured == "" {
			return fallback
		}
		return expandHome(configured, home)
	}

	p := Paths{Home: home}
	p.RCFile = pick(c.Paths.RCFile, filepath.Join(home, ".cjshrc"))
	p.ProfileFile = pick(c.Paths.ProfileFile, filepath.Join(home, ".cjprofile"))
	p.DataDir = pick(c.Paths.DataDir, filepath.Join(home, ".config", "cjsh"))
	p.CacheDir = pick(c.Paths.CacheDir, filepath.Join(home, ".cache", "cjsh"))
	p.ThemesDir = pick(c.Paths.ThemesDir, filepath.Join(p.DataDir, "themes"))
	p.PluginsDir = pick(c.Paths.PluginsDir, filepath.Join(p.DataDir, "plugins"))
	p.ColorsDir = filepath.Join(p.DataDir, "colors")
	p.ScratchSuffix = c.Paths.ScratchSuffix
	if p.ScratchSuffix == "" {
		p.ScratchSuffix = ".tmp"
	}
	return p
}

// EnsureLayout creates the shell's data directories and empty startup files
// where they are missing. Existing files are never truncated.
func EnsureLayout(p Paths) error {
	for _, dir := range []string{p.DataDir, p.CacheDir, p.ThemesDir, p.PluginsDir, p.ColorsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config.EnsureLayout: %w", err)
		}
	}
	for _, file := range []string{p.RCFile, p.ProfileFile} {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return fmt.Errorf("config.EnsureLayout: %w", err)
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("config.EnsureLayout: %w", err)
		}
		_ = f.Close()
	}
	return nil
}
