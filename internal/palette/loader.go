package palette

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the palette used for resolution.
// Search order: customPath -> ~/.recolor/palette.yaml -> ./palette.yaml -> embedded default
//
// The file is a flat YAML mapping of muted codes to vivid codes:
//
//	"513b3b": "963333ff"
//	"51413b": "964c33ff"
//
// Keys are normalized on load (lowercased, one leading '#' stripped) so
// hand-edited files may carry the '#' prefix. Values are kept verbatim;
// lookup stays permissive either way.
func Load(customPath string) (*Palette, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("palette: failed to read %s: %w", customPath, err)
		}
		p, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("palette: failed to parse %s: %w", customPath, err)
		}
		return p, nil
	}

	// Try user config directory
	if userPath := userPalettePath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if p, err := parse(data); err == nil {
				return p, nil
			}
		}
	}

	// Try working directory
	if data, err := os.ReadFile("palette.yaml"); err == nil {
		if p, err := parse(data); err == nil {
			return p, nil
		}
	}

	// Use embedded default YAML
	if p, err := parse(defaultPaletteYAML); err == nil {
		return p, nil
	}
	return Default(), nil // Fallback to hardcoded if embed fails
}

// parse decodes a flat muted → vivid YAML mapping.
func parse(data []byte) (*Palette, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	table := make(map[string]string, len(raw))
	for muted, vivid := range raw {
		table[Normalize(muted)] = vivid
	}
	return New(table), nil
}

// userPalettePath returns the path to the user palette file, or empty
// if the home directory is unavailable.
func userPalettePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".recolor", "palette.yaml")
}
