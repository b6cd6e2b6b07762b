package main

// Notes:
// - run() reads REACT_ENV_* variables through loadEnvConfig, so tests that
//   exercise that tier use t.Setenv and cannot run in parallel.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	reactenv "github.com/sanjay-arya/react-env"
	"github.com/sanjay-arya/react-env/internal/config"
)

// testEnv returns an Environment with captured output and a fixed snapshot.
func testEnv(environ []string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:     time.Now,
		Stdout:  &stdout,
		Stderr:  &stderr,
		Environ: func() []string { return environ },
	}, &stdout, &stderr
}

func mustParse(t *testing.T, args ...string) *cliFlags {
	t.Helper()
	flags, _, err := parseFlags(args)
	if err != nil {
		t.Fatalf("parseFlags(%v): %v", args, err)
	}
	return flags
}

func writeAsset(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPatchesTree(t *testing.T) {
	root := t.TempDir()
	app := writeAsset(t, root, "app.js", "env='__MY_APP_ENVIRONMENT__'")

	env, stdout, stderr := testEnv([]string{"MY_APP_ENVIRONMENT=QA"})
	if err := run(mustParse(t), []string{root}, env); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(app)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "env='QA'" {
		t.Errorf("app.js = %q", data)
	}
	if !strings.Contains(stdout.String(), "patched 1 of 1 files") {
		t.Errorf("summary missing: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "injecting MY_APP_ENVIRONMENT") {
		t.Errorf("replacement record missing: %q", stderr.String())
	}
	if strings.Contains(stderr.String(), "QA") || strings.Contains(stdout.String(), "QA") {
		t.Error("default output leaks replacement value")
	}
}

func TestRunQuietSuppressesRecords(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "app.js", "__MY_APP_X__")

	env, stdout, stderr := testEnv([]string{"MY_APP_X=1"})
	if err := run(mustParse(t, "--quiet"), []string{root}, env); err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet run wrote to stdout: %q", stdout.String())
	}
	if strings.Contains(stderr.String(), "injecting") {
		t.Errorf("quiet run wrote records: %q", stderr.String())
	}
}

func TestRunVerboseShowsValues(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "app.js", "__MY_APP_X__")

	env, _, stderr := testEnv([]string{"MY_APP_X=visible"})
	if err := run(mustParse(t, "--verbose"), []string{root}, env); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stderr.String(), "MY_APP_X=visible") {
		t.Errorf("verbose run does not show values: %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "elapsed:") {
		t.Errorf("verbose run does not show timing: %q", stderr.String())
	}
}

func TestRunDryRun(t *testing.T) {
	root := t.TempDir()
	app := writeAsset(t, root, "app.js", "__MY_APP_X__")

	env, stdout, _ := testEnv([]string{"MY_APP_X=1"})
	if err := run(mustParse(t, "--dry-run"), []string{root}, env); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(app)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "__MY_APP_X__" {
		t.Errorf("dry run modified app.js: %q", data)
	}
	if !strings.Contains(stdout.String(), "would patch 1 of 1 files") {
		t.Errorf("summary = %q", stdout.String())
	}
}

func TestRunArgumentErrors(t *testing.T) {
	env, _, _ := testEnv(nil)

	if err := run(mustParse(t), []string{"a", "b"}, env); !errors.Is(err, ErrTooManyArgs) {
		t.Errorf("run(two args) = %v, want %v", err, ErrTooManyArgs)
	}
	if err := run(mustParse(t), nil, env); !errors.Is(err, ErrNoRoot) {
		t.Errorf("run(no root) = %v, want %v", err, ErrNoRoot)
	}
}

func TestRunStrictFlag(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "app.js", "x")

	env, _, _ := testEnv([]string{"PATH=/bin"})
	err := run(mustParse(t, "--strict"), []string{root}, env)
	if !errors.Is(err, reactenv.ErrNoSubstitutions) {
		t.Errorf("run(--strict) = %v, want %v", err, reactenv.ErrNoSubstitutions)
	}
	if exitCodeFor(err) != ExitUsage {
		t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
	}
}

func TestRunCustomPrefixFlag(t *testing.T) {
	root := t.TempDir()
	app := writeAsset(t, root, "app.js", "__ACME_NAME__")

	env, _, _ := testEnv([]string{"ACME_NAME=shop", "MY_APP_IGNORED=1"})
	if err := run(mustParse(t, "--prefix", "ACME_"), []string{root}, env); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(app)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "shop" {
		t.Errorf("app.js = %q, want %q", data, "shop")
	}
}

func TestRunRootFromEnvVar(t *testing.T) {
	root := t.TempDir()
	app := writeAsset(t, root, "app.js", "__MY_APP_X__")
	t.Setenv("REACT_ENV_ROOT", root)

	env, _, _ := testEnv([]string{"MY_APP_X=1"})
	if err := run(mustParse(t, "--quiet"), nil, env); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(app)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1" {
		t.Errorf("app.js = %q, want %q", data, "1")
	}
}

func TestRunConfigFile(t *testing.T) {
	root := t.TempDir()
	app := writeAsset(t, root, "widget.html", "__ACME_TITLE__")
	writeAsset(t, root, "skip.js", "__ACME_TITLE__")

	cfgPath := filepath.Join(t.TempDir(), "deploy.yaml")
	cfgContent := "prefix: ACME_\nextensions: [.html]\n"
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0o644); err != nil {
		t.Fatal(err)
	}

	env, _, _ := testEnv([]string{"ACME_TITLE=Widgets"})
	if err := run(mustParse(t, "--config", cfgPath, "--quiet"), []string{root}, env); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(app)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Widgets" {
		t.Errorf("widget.html = %q, want %q", data, "Widgets")
	}
	skipped, err := os.ReadFile(filepath.Join(root, "skip.js"))
	if err != nil {
		t.Fatal(err)
	}
	if string(skipped) != "__ACME_TITLE__" {
		t.Errorf("skip.js was rewritten despite extension filter: %q", skipped)
	}
}

func TestResolveTimeout(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		envCfg *envConfig
		cfg    *config.Config
		want   time.Duration
	}{
		{
			name:   "default",
			envCfg: &envConfig{},
			cfg:    config.DefaultConfig(),
			want:   defaultTimeout,
		},
		{
			name:   "flag wins",
			args:   []string{"--timeout", "5s"},
			envCfg: &envConfig{Timeout: 10 * time.Second},
			cfg:    &config.Config{Timeout: "20s"},
			want:   5 * time.Second,
		},
		{
			name:   "flag zero disables",
			args:   []string{"--timeout", "0"},
			envCfg: &envConfig{Timeout: 10 * time.Second},
			cfg:    config.DefaultConfig(),
			want:   0,
		},
		{
			name:   "env beats config file",
			envCfg: &envConfig{Timeout: 10 * time.Second},
			cfg:    &config.Config{Timeout: "20s"},
			want:   10 * time.Second,
		},
		{
			name:   "config file beats default",
			envCfg: &envConfig{},
			cfg:    &config.Config{Timeout: "20s"},
			want:   20 * time.Second,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			flags := mustParse(t, tt.args...)
			if got := resolveTimeout(flags, tt.envCfg, tt.cfg); got != tt.want {
				t.Errorf("resolveTimeout = %v, want %v", got, tt.want)
			}
		})
	}
}
