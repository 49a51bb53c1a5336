// Package discovery locates repository directories and backup archives in a
// single directory using glob patterns.
package discovery

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/gitsh/internal/repos/naming"
)

const (
	globWildcardConstant              = "*"
	noRepositoryFoundMessageConstant  = "no repository found"
	noBackupFoundMessageConstant      = "no backup found"
	logFieldPrefixConstant            = "prefix"
	logFieldDirectoryConstant         = "directory"
	globErrorTemplateConstant         = "unable to match %q: %w"
	relativePathErrorTemplateConstant = "unable to resolve %q relative to %q: %w"
	defaultLocatorDirectoryConstant   = "."
)

// Locator lists repository directories and backup archives inside one directory.
type Locator struct {
	fileSystem afero.Fs
	directory  string
	logger     *zap.Logger
}

// NewLocator constructs a Locator rooted at directory. An empty directory means the working directory.
func NewLocator(fileSystem afero.Fs, directory string, logger *zap.Logger) *Locator {
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	if len(directory) == 0 {
		directory = defaultLocatorDirectoryConstant
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locator{fileSystem: fileSystem, directory: directory, logger: logger}
}

// FindRepositories returns repository directories whose names begin with prefix.
func (locator *Locator) FindRepositories(prefix string) ([]string, error) {
	candidates, matchError := locator.match(prefix + globWildcardConstant + naming.RepositoryDirectorySuffix)
	if matchError != nil {
		return nil, matchError
	}

	repositories := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		isDirectory, statError := afero.IsDir(locator.fileSystem, locator.resolve(candidate))
		if statError != nil || !isDirectory {
			continue
		}
		repositories = append(repositories, candidate)
	}

	if len(repositories) == 0 {
		locator.logger.Info(noRepositoryFoundMessageConstant, zap.String(logFieldPrefixConstant, prefix), zap.String(logFieldDirectoryConstant, locator.directory))
	}
	return repositories, nil
}

// FindBackups returns backup archives. A non-empty prefix restricts results to archives of repository prefix.
func (locator *Locator) FindBackups(prefix string) ([]string, error) {
	pattern := globWildcardConstant + naming.BackupArchiveSuffix
	if len(prefix) > 0 {
		pattern = prefix + naming.BackupTimestampSeparator + globWildcardConstant + naming.BackupArchiveSuffix
	}

	backups, matchError := locator.match(pattern)
	if matchError != nil {
		return nil, matchError
	}

	if len(backups) == 0 {
		locator.logger.Info(noBackupFoundMessageConstant, zap.String(logFieldPrefixConstant, prefix), zap.String(logFieldDirectoryConstant, locator.directory))
	}
	return backups, nil
}

// RepositoryExists reports whether the canonical directory for name exists.
func (locator *Locator) RepositoryExists(name string) bool {
	isDirectory, statError := afero.IsDir(locator.fileSystem, locator.resolve(naming.Canonicalize(name)))
	return statError == nil && isDirectory
}

func (locator *Locator) match(pattern string) ([]string, error) {
	matches, globError := afero.Glob(locator.fileSystem, locator.resolve(pattern))
	if globError != nil {
		return nil, fmt.Errorf(globErrorTemplateConstant, pattern, globError)
	}

	relativeMatches := make([]string, 0, len(matches))
	for _, match := range matches {
		relativeMatch, relativeError := filepath.Rel(locator.directory, match)
		if relativeError != nil {
			return nil, fmt.Errorf(relativePathErrorTemplateConstant, match, locator.directory, relativeError)
		}
		relativeMatches = append(relativeMatches, relativeMatch)
	}
	return relativeMatches, nil
}

func (locator *Locator) resolve(name string) string {
	return filepath.Join(locator.directory, name)
}
