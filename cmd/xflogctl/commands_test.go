package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// writeTempConfig 写入临时配置文件并返回路径。
func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRun_CheckValidConfig(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")
	cfgPath := writeTempConfig(t, "log.yaml", `
level: info
targets:
  - type: file
    path: `+logPath+`
`)

	if code := run([]string{"xflogctl", "check", cfgPath}); code != 0 {
		t.Errorf("run(check valid) = %d, want 0", code)
	}

	// 干跑会真实创建文件目标
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("check should have created the file target: %v", err)
	}
}

func TestRun_CheckMissingArg(t *testing.T) {
	if code := run([]string{"xflogctl", "check"}); code != 2 {
		t.Errorf("run(check) = %d, want 2", code)
	}
}

func TestRun_CheckExtraArgs(t *testing.T) {
	if code := run([]string{"xflogctl", "check", "a.yaml", "b.yaml"}); code != 2 {
		t.Errorf("run(check a b) = %d, want 2", code)
	}
}

func TestRun_CheckMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	if code := run([]string{"xflogctl", "check", path}); code != 1 {
		t.Errorf("run(check absent) = %d, want 1", code)
	}
}

func TestRun_CheckInvalidLevel(t *testing.T) {
	cfgPath := writeTempConfig(t, "log.yaml", "level: verbose\n")
	if code := run([]string{"xflogctl", "check", cfgPath}); code != 1 {
		t.Errorf("run(check invalid-level) = %d, want 1", code)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	if code := run([]string{"xflogctl", "frobnicate"}); code != 2 {
		t.Errorf("run(frobnicate) = %d, want 2", code)
	}
}

func TestRun_EmitToConfiguredFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "emit.log")
	cfgPath := writeTempConfig(t, "log.yaml", `
level: trace
targets:
  - type: file
    path: `+logPath+`
`)

	code := run([]string{"xflogctl", "emit", "-c", cfgPath, "-l", "info", "-o", "net", "hello", "world"})
	if code != 0 {
		t.Fatalf("run(emit) = %d, want 0", code)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "net INFO ] hello world\n") {
		t.Errorf("log line missing, got %q", string(data))
	}
}

func TestRun_EmitBelowThreshold(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "quiet.log")
	cfgPath := writeTempConfig(t, "log.yaml", `
level: error
targets:
  - type: file
    path: `+logPath+`
`)

	code := run([]string{"xflogctl", "emit", "-c", cfgPath, "-l", "info", "suppressed"})
	if code != 0 {
		t.Fatalf("run(emit below threshold) = %d, want 0", code)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty log, got %q", string(data))
	}
}

func TestRun_EmitInvalidLevel(t *testing.T) {
	if code := run([]string{"xflogctl", "emit", "-l", "loud", "msg"}); code != 2 {
		t.Errorf("run(emit -l loud) = %d, want 2", code)
	}
}

func TestRun_EmitNoMessage(t *testing.T) {
	if code := run([]string{"xflogctl", "emit"}); code != 2 {
		t.Errorf("run(emit) = %d, want 2", code)
	}
}

func TestCmdLevels_Output(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cli.Command{Writer: &buf}

	if err := cmdLevels(cmd); err != nil {
		t.Fatalf("cmdLevels: %v", err)
	}

	want := []string{"0  TRACE", "1  DEBUG", "2  INFO", "3  WARN", "4  ERROR"}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), buf.String())
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestUsageError(t *testing.T) {
	err := &usageError{msg: "test error"}
	if err.Error() != "test error" {
		t.Errorf("usageError.Error() = %q, want %q", err.Error(), "test error")
	}

	var target *usageError
	if !errors.As(error(err), &target) {
		t.Error("errors.As failed for *usageError")
	}
}

func TestExitError(t *testing.T) {
	err := &exitError{code: 3}
	if err.Error() != "" {
		t.Errorf("exitError.Error() = %q, want empty", err.Error())
	}

	var target *exitError
	if !errors.As(error(err), &target) {
		t.Error("errors.As failed for *exitError")
	}
	if target.code != 3 {
		t.Errorf("code = %d, want 3", target.code)
	}
}
