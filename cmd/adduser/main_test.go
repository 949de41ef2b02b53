package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempDB(t *testing.T, name string) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), name))
}

func TestRun_Success(t *testing.T) {
	useTempDB(t, "success.db")
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	args := []string{"-user", "testuser", "-email", "test@example.com", "-password", "secret"}
	err := run(args, new(bytes.Buffer), stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "User testuser created successfully")
}

func TestRun_DuplicateUser(t *testing.T) {
	useTempDB(t, "duplicate.db")
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	args := []string{"-user", "testuser", "-password", "secret"}
	require.NoError(t, run(args, new(bytes.Buffer), stdout, stderr), "first run should succeed")

	err := run(args, new(bytes.Buffer), stdout, stderr)
	require.Error(t, err, "expected error on duplicate user")
	assert.Contains(t, err.Error(), "already exists")
}

func TestRun_MissingUserFlag(t *testing.T) {
	stdout := new(bytes.Buffer)

	err := run([]string{"-password", "secret"}, new(bytes.Buffer), stdout, new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required flags: user")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestRun_InteractivePassword(t *testing.T) {
	useTempDB(t, "interactive.db")
	stdout := new(bytes.Buffer)
	stdin := bytes.NewBufferString("interactive_secret\n")

	err := run([]string{"-user", "interactive_user"}, stdin, stdout, new(bytes.Buffer))
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Password: ")
	assert.Contains(t, stdout.String(), "User interactive_user created successfully")
}

func TestRun_EmptyPassword(t *testing.T) {
	useTempDB(t, "empty.db")

	err := run([]string{"-user", "nopass"}, bytes.NewBufferString("   \n"), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password cannot be empty")
}

func TestRun_InvalidEmail(t *testing.T) {
	useTempDB(t, "email.db")

	err := run([]string{"-user", "mailer", "-email", "not-an-email", "-password", "secret"}, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email")
}
