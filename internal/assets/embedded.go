package assets

import (
	"embed"
	"fmt"
)

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadBackground loads a background image from embedded assets by name.
// The name should not include the .png extension.
func (e *EmbeddedLoader) LoadBackground(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := templates.ReadFile("templates/" + name + ".png")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBackgroundNotFound, name)
	}

	return content, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
