// Package auth supplies API credentials to the GitHub client. Callers hold a
// TokenProvider capability instead of reading the process environment
// directly, so tests and alternative credential sources plug in cleanly.
package auth

import (
	"fmt"
	"os"
	"strings"
)

// DefaultEnvVar is the environment variable consulted by EnvProvider when no
// other name is configured.
const DefaultEnvVar = "GITHUB_TOKEN"

// TokenProvider yields a bearer token for API authentication.
type TokenProvider interface {
	Token() (string, error)
}

// EnvProvider reads the token from an environment variable.
type EnvProvider struct {
	Var string // defaults to DefaultEnvVar
}

func (p EnvProvider) Token() (string, error) {
	name := p.Var
	if name == "" {
		name = DefaultEnvVar
	}
	token := strings.TrimSpace(os.Getenv(name))
	if token == "" {
		return "", fmt.Errorf("no token found in $%s", name)
	}
	return token, nil
}

// FileProvider reads the token from the first line of a file.
type FileProvider struct {
	Path string
}

func (p FileProvider) Token() (string, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	token := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", p.Path)
	}
	return token, nil
}

// Static is a fixed token, mainly for tests.
type Static string

func (s Static) Token() (string, error) {
	if s == "" {
		return "", fmt.Errorf("empty token")
	}
	return string(s), nil
}
