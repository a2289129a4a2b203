package github

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeContent encodes raw file content into the base64 form the Contents
// API requires.
func EncodeContent(content []byte) string {
	return base64.StdEncoding.EncodeToString(content)
}

// DecodeContent decodes base64 content as returned by the Contents API,
// which wraps long payloads with newlines.
func DecodeContent(encoded string) ([]byte, error) {
	cleaned := strings.ReplaceAll(encoded, "\n", "")
	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return data, nil
}
