package cliconfig_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/buildkite/pstatus/cliconfig"
	"github.com/google/go-cmp/cmp"
	"github.com/urfave/cli"
)

type testConfig struct {
	Name  string `cli:"name"`
	Count int    `cli:"count"`
	Debug bool   `cli:"debug"`
}

// runLoader loads cfg through a real cli app, the same way commands do.
func runLoader(t *testing.T, cfg any, flags []cli.Flag, args ...string) error {
	t.Helper()

	var loadErr error
	app := cli.NewApp()
	app.Name = "cliconfig-test"
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Flags: flags,
			Action: func(c *cli.Context) error {
				loader := cliconfig.Loader{CLI: c, Config: cfg}
				loadErr = loader.Load()
				return nil
			},
		},
	}

	if err := app.Run(append([]string{"cliconfig-test", "run"}, args...)); err != nil {
		t.Fatalf("app.Run(%q) = %v", args, err)
	}

	return loadErr
}

func testFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "config"},
		cli.StringFlag{Name: "name"},
		cli.IntFlag{Name: "count"},
		cli.BoolFlag{Name: "debug"},
	}
}

func writeTestConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pstatus.cfg")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("os.WriteFile(%q, contents, 0o600) = %v", path, err)
	}
	return path
}

func TestLoaderLoadsFromFlags(t *testing.T) {
	var cfg testConfig
	if err := runLoader(t, &cfg, testFlags(), "--name", "llamas", "--count", "42", "--debug"); err != nil {
		t.Fatalf("loader.Load() = %v", err)
	}

	want := testConfig{Name: "llamas", Count: 42, Debug: true}
	if diff := cmp.Diff(cfg, want); diff != "" {
		t.Errorf("loaded config diff (-got +want):\n%s", diff)
	}
}

func TestLoaderLoadsFromArgs(t *testing.T) {
	var cfg struct {
		Spell string   `cli:"arg:0"`
		All   []string `cli:"arg:*"`
	}
	if err := runLoader(t, &cfg, testFlags(), "expelliarmus", "wingardium", "leviosa"); err != nil {
		t.Fatalf("loader.Load() = %v", err)
	}

	if got, want := cfg.Spell, "expelliarmus"; got != want {
		t.Errorf("cfg.Spell = %q, want %q", got, want)
	}
	if diff := cmp.Diff(cfg.All, []string{"expelliarmus", "wingardium", "leviosa"}); diff != "" {
		t.Errorf("cfg.All diff (-got +want):\n%s", diff)
	}
}

func TestLoaderArgFallsBackToEnv(t *testing.T) {
	t.Setenv("TEST_LOADER_SPELL", "lumos")

	var cfg struct {
		Spell string `cli:"arg:0" env:"TEST_LOADER_SPELL"`
	}
	if err := runLoader(t, &cfg, testFlags()); err != nil {
		t.Fatalf("loader.Load() = %v", err)
	}

	if got, want := cfg.Spell, "lumos"; got != want {
		t.Errorf("cfg.Spell = %q, want %q", got, want)
	}
}

func TestLoaderLoadsFromConfigFile(t *testing.T) {
	path := writeTestConfigFile(t, "# Sample config\nname=\"llamas\"\ncount=42\ndebug=true\n")

	var cfg testConfig
	if err := runLoader(t, &cfg, testFlags(), "--config", path); err != nil {
		t.Fatalf("loader.Load() = %v", err)
	}

	want := testConfig{Name: "llamas", Count: 42, Debug: true}
	if diff := cmp.Diff(cfg, want); diff != "" {
		t.Errorf("loaded config diff (-got +want):\n%s", diff)
	}
}

func TestLoaderFlagsBeatConfigFile(t *testing.T) {
	path := writeTestConfigFile(t, "name=llamas\n")

	var cfg testConfig
	if err := runLoader(t, &cfg, testFlags(), "--config", path, "--name", "alpacas"); err != nil {
		t.Fatalf("loader.Load() = %v", err)
	}

	if got, want := cfg.Name, "alpacas"; got != want {
		t.Errorf("cfg.Name = %q, want %q", got, want)
	}
}

func TestLoaderFlagEnvBeatsConfigFile(t *testing.T) {
	t.Setenv("TEST_LOADER_NAME", "alpacas")
	path := writeTestConfigFile(t, "name=llamas\n")

	flags := []cli.Flag{
		cli.StringFlag{Name: "config"},
		cli.StringFlag{Name: "name", EnvVar: "TEST_LOADER_NAME"},
	}

	var cfg struct {
		Name string `cli:"name"`
	}
	if err := runLoader(t, &cfg, flags, "--config", path); err != nil {
		t.Fatalf("loader.Load() = %v", err)
	}

	if got, want := cfg.Name, "alpacas"; got != want {
		t.Errorf("cfg.Name = %q, want %q", got, want)
	}
}

func TestLoaderMissingConfigFile(t *testing.T) {
	var cfg testConfig
	err := runLoader(t, &cfg, testFlags(), "--config", filepath.Join(t.TempDir(), "nope.cfg"))
	if err == nil || !strings.Contains(err.Error(), "could not be found") {
		t.Errorf("loader.Load() = %v, want a missing config file error", err)
	}
}

func TestLoaderValidatesRequired(t *testing.T) {
	var cfg struct {
		Name string `cli:"name" label:"name to use" validate:"required"`
	}
	err := runLoader(t, &cfg, testFlags())
	if err == nil || !strings.Contains(err.Error(), "Missing name to use.") {
		t.Errorf("loader.Load() = %v, want a missing name to use error", err)
	}
}

func TestLoaderNormalizesFilePaths(t *testing.T) {
	var cfg struct {
		Path string `cli:"path" normalize:"filepath"`
	}
	flags := []cli.Flag{
		cli.StringFlag{Name: "config"},
		cli.StringFlag{Name: "path"},
	}
	if err := runLoader(t, &cfg, flags, "--path", "llamas"); err != nil {
		t.Fatalf("loader.Load() = %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("os.Getwd() = %v", err)
	}
	if got, want := cfg.Path, filepath.Join(wd, "llamas"); got != want {
		t.Errorf("cfg.Path = %q, want %q", got, want)
	}
}
