package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/alecthomas/kingpin.v2"
)

func runCalc(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	status := run(kingpin.New("calc", ""), args, strings.NewReader(stdin), stdout, stderr)
	return status, stdout.String(), stderr.String()
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestConfigureFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "prompt: \"file> \"\nexit: quit\necho: false\nprecision: 32\ndigits: 3\nverbosity: 1\nlog: file.log\n")

	_, config, err := configure(kingpin.New("calc", ""), []string{
		"--config", path, "--prompt", "flag> ", "--precision", "64", "--digits", "0", "-v", "-v", "--log", "flag.log",
	})
	require.NoError(t, err)
	require.Equal(t, &Config{
		Prompt:    "flag> ",
		Exit:      "quit",
		Echo:      false,
		Precision: 64,
		Digits:    0,
		Verbosity: 3,
		Log:       "flag.log",
	}, config)
}

func TestConfigureFileWithoutFlags(t *testing.T) {
	path := writeConfig(t, "precision: 32\ndigits: 3\n")

	_, config, err := configure(kingpin.New("calc", ""), []string{"--config", path})
	require.NoError(t, err)
	expected := DefaultConfig()
	expected.Precision = 32
	expected.Digits = 3
	require.Equal(t, expected, config)
}

func TestConfigureDefaults(t *testing.T) {
	_, config, err := configure(kingpin.New("calc", ""), []string{"-q", "--exit", "stop"})
	require.NoError(t, err)
	expected := DefaultConfig()
	expected.Echo = false
	expected.Exit = "stop"
	require.Equal(t, expected, config)
}

func TestRunArguments(t *testing.T) {
	status, stdout, _ := runCalc(t, "", "3+4*2")
	require.Equal(t, 0, status)
	require.Equal(t, "11\n", stdout)

	status, stdout, _ = runCalc(t, "", "1+")
	require.Equal(t, 1, status)
	require.Equal(t, "failure\n", stdout)
}

func TestRunEachArgumentSeparately(t *testing.T) {
	status, stdout, _ := runCalc(t, "", "1+1", "2+2", "1+", "(3+4)*2")
	require.Equal(t, 1, status)
	require.Equal(t, "2\n4\nfailure\n14\n", stdout)
}

func TestRunDigits(t *testing.T) {
	status, stdout, _ := runCalc(t, "", "--digits", "6", "1/3")
	require.Equal(t, 0, status)
	require.Equal(t, "0.333333\n", stdout)
}

func TestRunLoop(t *testing.T) {
	path := writeConfig(t, "exit: quit\n")
	status, stdout, _ := runCalc(t, "1 + 1\n1+\nquit\n2+2\n", "--config", path)
	require.Equal(t, 0, status)
	require.Equal(t, "1+1\n2\n1+\nfailure\n", stdout)

	status, stdout, _ = runCalc(t, "1 + 1\nexit\n", "-q")
	require.Equal(t, 0, status)
	require.Equal(t, "2\n", stdout)
}

func TestRunGrammar(t *testing.T) {
	status, stdout, _ := runCalc(t, "", "--grammar")
	require.Equal(t, 0, status)
	require.True(t, strings.HasPrefix(stdout, "Expression = NegSub | SubExpr ."))
}

func TestRunTrace(t *testing.T) {
	status, _, stderr := runCalc(t, "", "--trace", "1")
	require.Equal(t, 0, status)
	require.Contains(t, stderr, `"1" Expression`)
}

func TestRunErrors(t *testing.T) {
	status, _, stderr := runCalc(t, "", "--precision", "16")
	require.Equal(t, 2, status)
	require.Contains(t, stderr, "calc: error:")

	path := writeConfig(t, "digits: -3\n")
	status, _, stderr = runCalc(t, "", "--config", path)
	require.Equal(t, 2, status)
	require.Contains(t, stderr, "digits must not be negative but got -3")
}
