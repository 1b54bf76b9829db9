package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", "--min", "0", "--max", "10", "--decimals", "2", "9.99", "12.")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "9.99\tvalid") {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "12.\tprovisional") {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func TestCheckCommandRejects(t *testing.T) {
	out, err := run(t, "check", "--max", "10", "--decimals", "2", "9.999")
	if err == nil {
		t.Fatalf("expected rejection error")
	}
	if !strings.Contains(out, "only values in range [0~10] allowed, decimal places must not exceed 2 places") {
		t.Fatalf("expected hint, got %q", out)
	}
}

func TestAddressCommand(t *testing.T) {
	out, err := run(t, "address", "10.0.0.1", "192.168.1.300")
	if err == nil {
		t.Fatalf("expected rejection error")
	}
	if !strings.Contains(out, "10.0.0.1\tvalid") || !strings.Contains(out, "192.168.1.300\tinvalid") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := run(t, "--log-level", "loud", "address", "1.2.3.4"); err == nil {
		t.Fatalf("expected log level error")
	}
}

func TestLoadDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "link.yaml")
	data := "name: link\nfields:\n  - name: mtu\n    type: integer\n    min: 576\n    max: 9000\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cmd := newFormCmd(&app{})
	def, err := loadDefinition(cmd, &formOptions{definition: path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(def.Fields) != 1 || def.Fields[0].Name != "mtu" {
		t.Fatalf("unexpected definition %+v", def)
	}

	if _, err := loadDefinition(cmd, &formOptions{}); err == nil {
		t.Fatalf("expected error without a source")
	}
}
