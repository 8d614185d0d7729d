package builtin

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(chdir func(string) error) (*Env, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	if chdir == nil {
		chdir = func(string) error { return nil }
	}
	return &Env{
		Stdout:  stdout,
		Stderr:  stderr,
		Chdir:   chdir,
		NoColor: true,
	}, stdout, stderr
}

func TestDefaultNames(t *testing.T) {
	assert.Equal(t, []string{"cd", "exit", "help"}, Default().Names())
}

func TestCdMissingArgument(t *testing.T) {
	called := false
	env, stdout, stderr := testEnv(func(string) error {
		called = true
		return nil
	})

	status := Cd(env, []string{"cd"})

	assert.Equal(t, Continue, status)
	assert.False(t, called, "cd without an argument must not chdir")
	assert.Empty(t, stdout.String())
	assert.Equal(t, "lsh: expected argument to \"cd\"\n", stderr.String())
}

func TestCdFailure(t *testing.T) {
	env, stdout, stderr := testEnv(func(string) error {
		return errors.New("no such file or directory")
	})

	status := Cd(env, []string{"cd", "/nonexistent-path-xyz"})

	assert.Equal(t, Continue, status)
	assert.Empty(t, stdout.String())
	assert.Equal(t, 1, strings.Count(stderr.String(), "\n"), "exactly one diagnostic line")
	assert.Contains(t, stderr.String(), "no such file or directory")
}

func TestCdSuccess(t *testing.T) {
	var got string
	env, _, stderr := testEnv(func(dir string) error {
		got = dir
		return nil
	})

	// Extra arguments are ignored.
	status := Cd(env, []string{"cd", "/tmp", "ignored"})

	assert.Equal(t, Continue, status)
	assert.Equal(t, "/tmp", got)
	assert.Empty(t, stderr.String())
}

func TestExit(t *testing.T) {
	env, stdout, stderr := testEnv(nil)

	assert.Equal(t, Terminate, Exit(env, []string{"exit"}))
	assert.Equal(t, Terminate, Exit(env, []string{"exit", "1", "2"}))
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestHelpListsBuiltins(t *testing.T) {
	registry := Default()
	env, stdout, stderr := testEnv(nil)

	status := registry["help"](env, []string{"help"})
	require.Equal(t, Continue, status)
	assert.Empty(t, stderr.String())

	for _, name := range []string{"cd", "exit", "help"} {
		assert.Contains(t, stdout.String(), "\t"+name+"\n")
	}
}

func TestHelpGolden(t *testing.T) {
	registry := Default()
	env, stdout, _ := testEnv(nil)
	registry["help"](env, []string{"help"})

	g := goldie.New(t)
	g.Assert(t, "help", stdout.Bytes())
}
