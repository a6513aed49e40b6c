package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/u")
	p := Default().Resolve()

	want := Paths{
		Home:          "/home/u",
		RCFile:        "/home/u/.cjshrc",
		ProfileFile:   "/home/u/.cjprofile",
		DataDir:       "/home/u/.config/cjsh",
		CacheDir:      "/home/u/.cache/cjsh",
		ThemesDir:     "/home/u/.config/cjsh/themes",
		PluginsDir:    "/home/u/.config/cjsh/plugins",
		ColorsDir:     "/home/u/.config/cjsh/colors",
		ScratchSuffix: ".tmp",
	}
	if p != want {
		t.Fatalf("Resolve = %+v, want %+v", p, want)
	}
}

func TestResolveHomeFallback(t *testing.T) {
	t.Setenv("HOME", "")
	p := Config{}.Resolve()
	if p.Home != "/tmp" {
		t.Fatalf("Home = %q, want /tmp", p.Home)
	}
	if p.ScratchSuffix != ".tmp" {
		t.Fatalf("ScratchSuffix = %q, want .tmp", p.ScratchSuffix)
	}
}

func TestEnsureLayout(t *testing.T) {
	home := t.TempDir()
	cfg := Default()
	cfg.Paths.Home = home
	p := cfg.Resolve()

	writeFile(t, p.RCFile, "alias ll='ls -l'\n")
	if err := EnsureLayout(p); err != nil {
		t.Fatalf("EnsureLayout error: %v", err)
	}
	for _, dir := range []string{p.DataDir, p.CacheDir, p.ThemesDir, p.PluginsDir, p.ColorsDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("%s not created: %v", dir, err)
		}
	}
	data, err := os.ReadFile(p.RCFile)
	if err != nil {
		t.Fatalf("read rc: %v", err)
	}
	if string(data) != "alias ll='ls -l'\n" {
		t.Fatalf("rc file rewritten: %q", data)
	}
	if _, err := os.Stat(filepath.Join(home, ".cjprofile")); err != nil {
		t.Fatalf("profile not created: %v", err)
	}
}
