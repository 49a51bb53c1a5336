package deploy

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	manifestReadErrorTemplateConstant       = "failed to read deploy manifest %s: %w"
	manifestParseErrorTemplateConstant      = "failed to parse deploy manifest: %w"
	manifestEmptyMessageConstant            = "deploy manifest must define at least one directory"
	manifestDirectoryMissingMessageConstant = "deploy manifest entry missing directory"
	manifestPathEscapesTemplateConstant     = "deploy manifest path %q must stay inside the target root"
	manifestFileNameTemplateConstant        = "deploy manifest file %q must be a plain file name"
	parentDirectoryReferenceConstant        = ".."
)

//go:embed default_manifest.yaml
var embeddedDefaultManifest []byte

// Entry maps a directory relative to the deploy root to the files copied into it.
type Entry struct {
	Directory string   `yaml:"directory"`
	Files     []string `yaml:"files"`
}

// Manifest is the ordered deploy tree.
type Manifest struct {
	Tree []Entry `yaml:"tree"`
}

// DefaultManifest returns the built-in deploy tree.
func DefaultManifest() (Manifest, error) {
	return ParseManifest(embeddedDefaultManifest)
}

// LoadManifest reads a manifest file from fileSystem.
func LoadManifest(fileSystem afero.Fs, path string) (Manifest, error) {
	content, readError := afero.ReadFile(fileSystem, path)
	if readError != nil {
		return Manifest{}, fmt.Errorf(manifestReadErrorTemplateConstant, path, readError)
	}
	return ParseManifest(content)
}

// ParseManifest decodes and validates YAML manifest content.
func ParseManifest(content []byte) (Manifest, error) {
	var manifest Manifest
	if decodeError := yaml.Unmarshal(content, &manifest); decodeError != nil {
		return Manifest{}, fmt.Errorf(manifestParseErrorTemplateConstant, decodeError)
	}
	if validationError := manifest.validate(); validationError != nil {
		return Manifest{}, validationError
	}
	return manifest, nil
}

func (manifest Manifest) validate() error {
	if len(manifest.Tree) == 0 {
		return errors.New(manifestEmptyMessageConstant)
	}
	for _, entry := range manifest.Tree {
		directory := strings.TrimSpace(entry.Directory)
		if len(directory) == 0 {
			return errors.New(manifestDirectoryMissingMessageConstant)
		}
		cleaned := filepath.Clean(directory)
		if filepath.IsAbs(cleaned) || cleaned == parentDirectoryReferenceConstant || strings.HasPrefix(cleaned, parentDirectoryReferenceConstant+string(filepath.Separator)) {
			return fmt.Errorf(manifestPathEscapesTemplateConstant, directory)
		}
		for _, file := range entry.Files {
			if len(strings.TrimSpace(file)) == 0 || filepath.Base(file) != file {
				return fmt.Errorf(manifestFileNameTemplateConstant, file)
			}
		}
	}
	return nil
}
