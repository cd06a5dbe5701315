package cmd

import (
	"flag"
	"os"
	"os/exec"
	"strings"
	"testing"
)

type entryConfig struct {
	Dir string `env:"TEST_ENTRY_DIR" envDefault:"data"`
}

func TestParseConfigDefaults(t *testing.T) {
	var cfg entryConfig
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Dir != "data" {
		t.Fatalf("expected default dir, got %q", cfg.Dir)
	}
}

func TestParseConfigRequiresTarget(t *testing.T) {
	if err := ParseConfig[entryConfig](nil); err == nil {
		t.Fatal("expected an error for a nil config target")
	}
}

func TestParseArgs(t *testing.T) {
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("expected an error for a nil flag parser")
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	dir := fs.String("dir", "fallback", "")
	if err := ParseArgs(fs, []string{"-dir", "elsewhere"}); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if *dir != "elsewhere" {
		t.Fatalf("expected flag value applied, got %q", *dir)
	}

	empty := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := ParseArgs(empty, nil); err != nil {
		t.Fatalf("nil args must parse as empty: %v", err)
	}
}

// TestExitf_ExitsWithCode1 verifies that Exitf writes to stderr and exits
// with code 1. It uses the subprocess test pattern because os.Exit cannot be
// intercepted in-process.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: something broke") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: something broke", string(out))
	}
}
