package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const (
	// defaultEnvFileMode is the default file permission for env files
	defaultEnvFileMode = 0644
)

// EnvVariable is a key with the value written when the key is absent.
type EnvVariable struct {
	Key   string
	Value string
}

// EnsureEnvFileVariables appends every variable whose key is not yet present in
// the env file, creating the file if needed. Existing keys, comments and
// formatting are left untouched. It returns the keys that were added.
func EnsureEnvFileVariables(filePath string, vars []EnvVariable) ([]string, error) {
	info, err := os.Stat(filePath)
	if err == nil && info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to access env file %s: %w", filePath, err)
	}

	var lines []string
	if err == nil {
		lines, err = readEnvFileLines(filePath)
		if err != nil {
			return nil, err
		}
	}

	var added []string
	for _, v := range vars {
		if hasEnvKey(lines, v.Key) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s=%s", v.Key, v.Value))
		added = append(added, v.Key)
	}
	if len(added) == 0 {
		return nil, nil
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filePath, []byte(content), defaultEnvFileMode); err != nil {
		return nil, fmt.Errorf("failed to write env file %s: %w", filePath, err)
	}
	return added, nil
}

func readEnvFileLines(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open env file %s: %w", filePath, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return lines, nil
}

func hasEnvKey(lines []string, key string) bool {
	for _, line := range lines {
		if isEnvKeyMatch(strings.TrimSpace(line), key) {
			return true
		}
	}
	return false
}

// isEnvKeyMatch checks if a line matches the given environment variable key
// Returns true only if the line is exactly "KEY=..." (not a comment, not a different key)
func isEnvKeyMatch(line, key string) bool {
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}
	line = strings.TrimPrefix(line, "export ")
	k, _, found := strings.Cut(line, "=")
	return found && strings.TrimSpace(k) == key
}
