package pathutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant                = "~"
	homeDirectoryUnavailableTemplate   = "unable to expand %q: %w"
	homeDirectoryEmptyMessageConstant  = "home directory is not set"
	unsupportedUserHomeMessageConstant = "expanding another user's home directory is not supported"
)

var (
	// ErrHomeDirectoryUnavailable indicates that the current user's home directory could not be determined.
	ErrHomeDirectoryUnavailable = errors.New(homeDirectoryEmptyMessageConstant)
	// ErrUnsupportedUserHome indicates a "~user" prefix.
	ErrUnsupportedUserHome = errors.New(unsupportedUserHomeMessageConstant)
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander converts a leading "~" into the current user's home directory.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{homeDirectoryProvider: provider}
}

// Expand resolves "~" and "~/..." against the home directory. Other paths are returned unchanged.
func (expander *HomeExpander) Expand(candidatePath string) (string, error) {
	if !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath, nil
	}

	remainder := strings.TrimPrefix(candidatePath, tildeSymbolConstant)
	if len(remainder) > 0 && !os.IsPathSeparator(remainder[0]) {
		return "", fmt.Errorf(homeDirectoryUnavailableTemplate, candidatePath, ErrUnsupportedUserHome)
	}

	homeDirectory, homeError := expander.resolveHomeDirectory()
	if homeError != nil {
		return "", fmt.Errorf(homeDirectoryUnavailableTemplate, candidatePath, homeError)
	}

	return filepath.Join(homeDirectory, remainder), nil
}

func (expander *HomeExpander) resolveHomeDirectory() (string, error) {
	expander.initializationGuard.Do(func() {
		expander.homeDirectory, expander.homeDirectoryError = expander.homeDirectoryProvider()
		if expander.homeDirectoryError == nil && len(expander.homeDirectory) == 0 {
			expander.homeDirectoryError = ErrHomeDirectoryUnavailable
		}
	})
	return expander.homeDirectory, expander.homeDirectoryError
}
