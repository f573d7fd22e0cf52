package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/client-directory/internal/auth"
)

// run executes the command tree against a fresh in-memory store.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("STORE", "memory")
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return out.String(), err
}

func TestInitCmd(t *testing.T) {
	out, err := run(t, "", "init")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestClientAddCmd(t *testing.T) {
	out, err := run(t, "", "client", "add",
		"--first-name", "Ivan", "--last-name", "Popov", "--email", "ivan@x.com",
		"--phone", "7123", "--phone", "7456")
	require.NoError(t, err)
	assert.Contains(t, out, "Client ID: 1")
}

func TestClientAddCmd_JSON(t *testing.T) {
	out, err := run(t, "", "--json", "client", "add",
		"--first-name", "Ivan", "--last-name", "Popov", "--email", "ivan@x.com", "--phone", "7123")
	require.NoError(t, err)
	assert.Contains(t, out, `"client_id": 1`)
	assert.Contains(t, out, `"number": "7123"`)
}

func TestClientAddCmd_MissingFlags(t *testing.T) {
	_, err := run(t, "", "client", "add", "--first-name", "Ivan")
	assert.ErrorContains(t, err, "required flag")
}

func TestClientFindCmd_Criteria(t *testing.T) {
	_, err := run(t, "", "client", "find")
	assert.Error(t, err)

	_, err = run(t, "", "client", "find", "--first-name", "Ivan", "--phone", "7123")
	assert.Error(t, err)

	_, err = run(t, "", "client", "find", "--email", "nobody@x.com")
	assert.ErrorContains(t, err, "not_found")
}

func TestClientUpdateCmd(t *testing.T) {
	out, err := run(t, "", "client", "update", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to update")

	_, err = run(t, "", "client", "update", "1", "--phone", "7123")
	assert.Error(t, err)

	_, err = run(t, "", "client", "update", "1", "--email", "x@y.z")
	assert.ErrorContains(t, err, "not_found")

	_, err = run(t, "", "client", "update", "zero", "--email", "x@y.z")
	assert.ErrorContains(t, err, "invalid client-id")
}

func TestClientDeleteCmd(t *testing.T) {
	out, err := run(t, "no\n", "client", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")

	out, err = run(t, "", "client", "delete", "1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "does not exist")
}

func TestPhoneCmds(t *testing.T) {
	_, err := run(t, "", "phone", "add", "1", "7123")
	assert.ErrorContains(t, err, "constraint_violation")

	out, err := run(t, "", "phone", "delete", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "has no phone")
}

func TestClientListCmd_Empty(t *testing.T) {
	out, err := run(t, "", "client", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No clients found")
}

func TestTokenCmd(t *testing.T) {
	out, err := run(t, "", "token", "--subject", "ops")
	require.NoError(t, err)

	claims, err := auth.NewJWTManager("cli-secret").Validate(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
}

func TestTokenCmd_NoSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE", "memory")
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"token"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.ErrorContains(t, cmd.Execute(), "jwt_secret")
}

func TestParseID(t *testing.T) {
	id, err := parseID("client-id", "42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"0", "-1", "abc", "99999999999"} {
		_, err := parseID("client-id", raw)
		assert.Error(t, err, raw)
	}
}
