package env

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessor_Get(t *testing.T) {
	acc := NewAccessor(Map(map[string]string{
		"DEPLOYER_PRIVATE_KEY": "0xabc",
		"EMPTY":                "",
	}))

	v, err := acc.Get("DEPLOYER_PRIVATE_KEY")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", v)

	tests := []struct {
		name     string
		variable string
	}{
		{name: "unset", variable: "NOT_SET"},
		{name: "empty", variable: "EMPTY"},
		{name: "case sensitive", variable: "deployer_private_key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Every call fails, not just the first.
			for i := 0; i < 3; i++ {
				_, err := acc.Get(tt.variable)
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMissingVariable))

				var missing *MissingVariableError
				require.True(t, errors.As(err, &missing))
				assert.Equal(t, tt.variable, missing.Name)
				assert.Contains(t, err.Error(), tt.variable)
			}
		})
	}
}

func TestAccessor_ReadsAtCallTime(t *testing.T) {
	const name = "DEPLOYKIT_TEST_LATE_VAR"
	t.Setenv(name, "")
	os.Unsetenv(name)

	acc := NewAccessor(nil)
	_, err := acc.Get(name)
	require.ErrorIs(t, err, ErrMissingVariable)

	t.Setenv(name, "late")
	v, err := acc.Get(name)
	require.NoError(t, err)
	assert.Equal(t, "late", v)
}

func TestAccessor_Flag(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want bool
	}{
		{name: "exactly one", vars: map[string]string{"VERIFY_CONTRACTS": "1"}, want: true},
		{name: "zero", vars: map[string]string{"VERIFY_CONTRACTS": "0"}, want: false},
		{name: "true literal", vars: map[string]string{"VERIFY_CONTRACTS": "true"}, want: false},
		{name: "padded", vars: map[string]string{"VERIFY_CONTRACTS": " 1"}, want: false},
		{name: "absent", vars: map[string]string{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewAccessor(Map(tt.vars))
			assert.Equal(t, tt.want, acc.Flag("VERIFY_CONTRACTS"))
		})
	}
}

func TestAccessor_GetOr(t *testing.T) {
	acc := NewAccessor(Map(map[string]string{"A": "x"}))
	assert.Equal(t, "x", acc.GetOr("A", "def"))
	assert.Equal(t, "def", acc.GetOr("B", "def"))
}

func TestChain(t *testing.T) {
	lookup := Chain(
		Map(map[string]string{"A": "", "B": "first"}),
		nil,
		Map(map[string]string{"A": "second", "B": "ignored"}),
	)

	v, ok := lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "second", v)

	v, ok = lookup("B")
	assert.True(t, ok)
	assert.Equal(t, "first", v)

	_, ok = lookup("C")
	assert.False(t, ok)
}

func TestMap_Snapshot(t *testing.T) {
	vars := map[string]string{"A": "1"}
	lookup := Map(vars)
	vars["A"] = "2"

	v, _ := lookup("A")
	assert.Equal(t, "1", v)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nDEPLOYER_PRIVATE_KEY=0xfeed\nVERIFY_CONTRACTS=\"1\"\n"), 0644))

	lookup, err := File(path)
	require.NoError(t, err)

	acc := NewAccessor(lookup)
	v, err := acc.Get("DEPLOYER_PRIVATE_KEY")
	require.NoError(t, err)
	assert.Equal(t, "0xfeed", v)
	assert.True(t, acc.Flag("VERIFY_CONTRACTS"))

	_, err = File(filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	const name = "DEPLOYKIT_TEST_DOTENV"
	dir := t.TempDir()

	// Missing file is fine.
	require.NoError(t, LoadDotEnv(filepath.Join(dir, "nope.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(name+"=from-file\n"), 0644))

	t.Setenv(name, "")
	os.Unsetenv(name)
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv(name))

	// Existing values win.
	t.Setenv(name, "from-process")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-process", os.Getenv(name))
}
