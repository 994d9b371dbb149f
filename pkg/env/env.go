// Package env reads named environment variables through an injectable lookup.
package env

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-envparse"
	"github.com/joho/godotenv"
)

var ErrMissingVariable = errors.New("missing environment variable")

// MissingVariableError reports an unset or empty environment variable.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingVariable, e.Name)
}

func (e *MissingVariableError) Is(target error) bool {
	return target == ErrMissingVariable
}

// Lookup resolves a variable by exact name, reporting whether it is present.
type Lookup func(name string) (string, bool)

// OS returns a lookup over the process environment. Each call reads the
// environment at call time.
func OS() Lookup {
	return os.LookupEnv
}

// Map returns a lookup over a fixed set of variables.
func Map(vars map[string]string) Lookup {
	snapshot := make(map[string]string, len(vars))
	for k, v := range vars {
		snapshot[k] = v
	}
	return func(name string) (string, bool) {
		v, ok := snapshot[name]
		return v, ok
	}
}

// File parses a dotenv file into a lookup without touching the process environment.
func File(path string) (Lookup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open env file %s: %w", path, err)
	}
	defer f.Close()

	vars, err := envparse.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", path, err)
	}
	return Map(vars), nil
}

// Chain returns the first non-empty value found across lookups, in order.
func Chain(lookups ...Lookup) Lookup {
	return func(name string) (string, bool) {
		for _, lookup := range lookups {
			if lookup == nil {
				continue
			}
			if v, ok := lookup(name); ok && v != "" {
				return v, true
			}
		}
		return "", false
	}
}

// LoadDotEnv loads variables from a dotenv file into the process environment.
// A missing file is not an error. Variables already set are preserved.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}
