package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// File is one entry of the ordered file set fed to the batch driver.
type File struct {
	Path    string
	Content string
}

// manifestEntry is one [[files]] block in a manifest file. Exactly one of
// Content and Source must be set; Source names a local file to read.
type manifestEntry struct {
	Path    string `toml:"path"`
	Content string `toml:"content"`
	Source  string `toml:"source"`
}

type manifest struct {
	Files []manifestEntry `toml:"files"`
}

// LoadManifest reads an ordered file set from a TOML manifest. Relative
// source paths are resolved against the manifest's directory.
func LoadManifest(path string) ([]File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(m.Files) == 0 {
		return nil, fmt.Errorf("manifest %s lists no files", path)
	}

	baseDir := filepath.Dir(path)
	files := make([]File, 0, len(m.Files))
	for i, e := range m.Files {
		if e.Path == "" {
			return nil, fmt.Errorf("manifest %s: files[%d] has no path", path, i)
		}
		if strings.HasPrefix(e.Path, "/") {
			return nil, fmt.Errorf("manifest %s: %s must be repo-relative", path, e.Path)
		}
		if e.Content != "" && e.Source != "" {
			return nil, fmt.Errorf("manifest %s: %s sets both content and source", path, e.Path)
		}

		content := e.Content
		if e.Source != "" {
			src := e.Source
			if !filepath.IsAbs(src) {
				src = filepath.Join(baseDir, src)
			}
			data, err := os.ReadFile(src)
			if err != nil {
				return nil, fmt.Errorf("manifest %s: %s: %w", path, e.Path, err)
			}
			content = string(data)
		}

		files = append(files, File{Path: e.Path, Content: content})
	}

	return files, nil
}
