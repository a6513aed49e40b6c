package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type PathOptions struct {
	Home          string `toml:"home"`
	RCFile        string `toml:"rc-file"`
	ProfileFile   string `toml:"profile-file"`
	DataDir       string `toml:"data-dir"`
	CacheDir      string `toml:"cache-dir"`
	ThemesDir     string `toml:"themes-dir"`
	PluginsDir    string `toml:"plugins-dir"`
	ScratchSuffix string `toml:"scratch-suffix"`
}

type Theme struct {
	Theme              string `toml:"theme"`
	Foreground         string `toml:"foreground"`
	Background         string `toml:"background"`
	TitleForeground    string `toml:"title-foreground"`
	SplashForeground   string `toml:"splash-foreground"`
	SelectedForeground string `toml:"selected-foreground"`
	SelectedBackground string `toml:"selected-background"`
	PreviewForeground  string `toml:"preview-foreground"`
	StatusForeground   string `toml:"status-foreground"`
	ErrorForeground    string `toml:"error-foreground"`
	SyntaxKeyword      string `toml:"syntax-keyword"`
	SyntaxString       string `toml:"syntax-string"`
	SyntaxComment      string `toml:"syntax-comment"`
	SyntaxVariable     string `toml:"syntax-variable"`
	SyntaxFunction     string `toml:"syntax-function"`
	SyntaxNumber       string `toml:"syntax-number"`
	SyntaxOperator     string `toml:"syntax-operator"`
}

type Config struct {
	Paths PathOptions `toml:"paths"`
	Theme Theme       `toml:"theme"`
}

func Default() Config {
	return Config{
		Paths: PathOptions{
			ScratchSuffix: ".tmp",
		},
		Theme: Theme{
			Foreground:         "#B3B1AD",
			Background:         "#0A0E14",
			TitleForeground:    "#E6B450",
			SplashForeground:   "#59C2FF",
			SelectedForeground: "#0A0E14",
			SelectedBackground: "#E6B450",
			PreviewForeground:  "#B3B1AD",
			StatusForeground:   "#BAE67E",
			ErrorForeground:    "#FF3333",
			SyntaxKeyword:      "#FFA759",
			SyntaxString:       "#BAE67E",
			SyntaxComment:      "#5C6773",
			SyntaxVariable:     "#D4BFFF",
			SyntaxFunction:     "#FFD173",
			SyntaxNumber:       "#D4BFFF",
			SyntaxOperator:     "#F29668",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	mergePaths(&cfg.Paths, userCfg.Paths)
	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
	}
	if cfg.Theme.Theme != "" {
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)
	return cfg, nil
}

func mergePaths(dst *PathOptions, src PathOptions) {
	if src.Home != "" {
		dst.Home = src.Home
	}
	if src.RCFile != "" {
		dst.RCFile = src.RCFile
	}
	if src.ProfileFile != "" {
		dst.ProfileFile = src.ProfileFile
	}
	if src.DataDir != "" {
		dst.DataDir = src.DataDir
	}
	if src.CacheDir != "" {
		dst.CacheDir = src.CacheDir
	}
	if src.ThemesDir != "" {
		dst.ThemesDir = src.ThemesDir
	}
	if src.PluginsDir != "" {
		dst.PluginsDir = src.PluginsDir
	}
	if src.ScratchSuffix != "" {
		dst.ScratchSuffix = src.ScratchSuffix
	}
}

func mergeTheme(dst *Theme, src Theme) {
	if src.Foreground != "" {
		dst.Foreground = src.Foreground
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.TitleForeground != "" {
		dst.TitleForeground = src.TitleForeground
	}
	if src.SplashForeground != "" {
		dst.SplashForeground = src.SplashForeground
	}
	if src.SelectedForeground != "" {
		dst.SelectedForeground = src.SelectedForeground
	}
	if src.SelectedBackground != "" {
		dst.SelectedBackground = src.SelectedBackground
	}
	if src.PreviewForeground != "" {
		dst.PreviewForeground = src.PreviewForeground
	}
	if src.StatusForeground != "" {
		dst.StatusForeground = src.StatusForeground
	}
	if src.ErrorForeground != "" {
		dst.ErrorForeground = src.ErrorForeground
	}
	if src.SyntaxKeyword != "" {
		dst.SyntaxKeyword = src.SyntaxKeyword
	}
	if src.SyntaxString != "" {
		dst.SyntaxString = src.SyntaxString
	}
	if src.SyntaxComment != "" {
		dst.SyntaxComment = src.SyntaxComment
	}
	if src.SyntaxVariable != "" {
		dst.SyntaxVariable = src.SyntaxVariable
	}
	if src.SyntaxFunction != "" {
		dst.SyntaxFunction = src.SyntaxFunction
	}
	if src.SyntaxNumber != "" {
		dst.SyntaxNumber = src.SyntaxNumber
	}
	if src.SyntaxOperator != "" {
		dst.SyntaxOperator = src.SyntaxOperator
	}
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

// LoadTheme reads a color scheme for the configurator itself, either flat or
// wrapped in a [theme] table.
func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err == nil {
		return t, nil
	}
	var wrap struct {
		Theme Theme `toml:"theme"`
	}
	if _, err := toml.Decode(string(data), &wrap); err != nil {
		return Theme{}, err
	}
	return wrap.Theme, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("CJCONF_CONFIG_HOME"); v != "" {
		return filepath.Clean(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "cjconf"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cjconf"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
