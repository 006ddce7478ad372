package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer

	root := newRootCmd()
	root.SetIn(strings.NewReader("push 42\npush 314\npop\npop\npop\n"))
	root.SetOut(&out)
	root.SetArgs([]string{"run", "--format", "text"})

	require.NoError(t, root.Execute())
	require.Equal(t, "push\tlen=1\npush\tlen=2\npop\tlen=1\t314\npop\tlen=0\t42\npop\tlen=0\n", out.String())
}

func TestRun_json(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer

	root := newRootCmd()
	root.SetIn(strings.NewReader("push 1\npeek\niter\n"))
	root.SetOut(&out)
	root.SetArgs([]string{"run"})

	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.JSONEq(t, `{"op":"push","value":null,"len":1}`, lines[0])
	require.JSONEq(t, `{"op":"peek","value":"1","len":1}`, lines[1])
	require.JSONEq(t, `{"op":"iter","value":null,"len":1,"items":["1"]}`, lines[2])
}

func TestRun_missingConfig(t *testing.T) {
	root := newRootCmd()
	root.SetIn(strings.NewReader(""))
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "run"})

	require.Error(t, root.Execute())
}

func TestEval(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer

	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"eval", "--tag", "linux", "--tag", "cgo", "linux && !(js || wasm) && cgo"})

	require.NoError(t, root.Execute())
	require.Equal(t, "true\n", out.String())
}

func TestRun_logFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "lifo.log")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("debug: true\nlog_file: "+logPath+"\n"), 0o600))

	var out bytes.Buffer

	root := newRootCmd()
	root.SetIn(strings.NewReader("push 1\n"))
	root.SetOut(&out)
	root.SetArgs([]string{"--config", cfgPath, "run"})

	require.NoError(t, root.Execute())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "executed command")
}
