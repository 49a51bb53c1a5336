// Package deploy installs the git-shell command files into a fixed directory
// tree below a target root, typically the git account's home directory.
package deploy

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	operationInspectRootConstant     = "inspect root"
	operationCreateDirectoryConstant = "create directory"
	operationCopyFileConstant        = "copy file"
	rootNotDirectoryMessageConstant  = "deploy root is not a directory"
	installPrefixMessageConstant     = "install prefix"
	directoryMessageConstant         = "directory"
	fileMessageConstant              = "file"
	fileInPlaceMessageConstant       = "file already in place"
	logFieldRootConstant             = "root"
	logFieldDirectoryConstant        = "directory"
	logFieldFileConstant             = "file"
	logFieldSourceConstant           = "source"
	directoryPermissionsConstant     = os.FileMode(0o755)
)

// ErrRootNotDirectory indicates that the deploy root is missing or not a directory.
var ErrRootNotDirectory = errors.New(rootNotDirectoryMessageConstant)

// Options configures a deploy run.
// SourceOverrides maps a manifest file name to the path it is copied from instead of SourceDirectory.
type Options struct {
	Root            string
	SourceDirectory string
	SourceOverrides map[string]string
	Manifest        Manifest
}

func (options Options) sourcePath(file string) string {
	if overridePath, overridden := options.SourceOverrides[file]; overridden {
		return overridePath
	}
	return filepath.Join(options.SourceDirectory, file)
}

// Deployer creates the deploy tree and copies command files into it.
type Deployer struct {
	fileSystem afero.Fs
	logger     *zap.Logger
}

// NewDeployer constructs a Deployer.
func NewDeployer(fileSystem afero.Fs, logger *zap.Logger) *Deployer {
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Deployer{fileSystem: fileSystem, logger: logger}
}

// Deploy installs every manifest entry below options.Root.
// It stops at the first failure and leaves already copied files in place.
func (deployer *Deployer) Deploy(options Options) error {
	deployer.logger.Info(installPrefixMessageConstant, zap.String(logFieldRootConstant, options.Root))

	isDirectory, statError := afero.IsDir(deployer.fileSystem, options.Root)
	if statError != nil {
		return FilesystemError{Operation: operationInspectRootConstant, Path: options.Root, Cause: errors.Join(ErrRootNotDirectory, statError)}
	}
	if !isDirectory {
		return FilesystemError{Operation: operationInspectRootConstant, Path: options.Root, Cause: ErrRootNotDirectory}
	}

	for _, entry := range options.Manifest.Tree {
		targetDirectory := filepath.Join(options.Root, entry.Directory)
		if mkdirError := deployer.fileSystem.MkdirAll(targetDirectory, directoryPermissionsConstant); mkdirError != nil {
			return FilesystemError{Operation: operationCreateDirectoryConstant, Path: targetDirectory, Cause: mkdirError}
		}
		deployer.logger.Info(directoryMessageConstant, zap.String(logFieldDirectoryConstant, entry.Directory))

		for _, file := range entry.Files {
			sourcePath := options.sourcePath(file)
			targetPath := filepath.Join(targetDirectory, file)
			if filepath.Clean(sourcePath) == filepath.Clean(targetPath) {
				deployer.logger.Info(fileInPlaceMessageConstant, zap.String(logFieldFileConstant, filepath.Join(entry.Directory, file)))
				continue
			}
			if copyError := deployer.copyFile(sourcePath, targetPath); copyError != nil {
				return FilesystemError{Operation: operationCopyFileConstant, Path: sourcePath, Cause: copyError}
			}
			deployer.logger.Info(fileMessageConstant, zap.String(logFieldFileConstant, filepath.Join(entry.Directory, file)), zap.String(logFieldSourceConstant, sourcePath))
		}
	}

	return nil
}

func (deployer *Deployer) copyFile(sourcePath string, targetPath string) error {
	sourceInfo, statError := deployer.fileSystem.Stat(sourcePath)
	if statError != nil {
		return statError
	}

	sourceFile, openError := deployer.fileSystem.Open(sourcePath)
	if openError != nil {
		return openError
	}
	defer sourceFile.Close()

	permissions := sourceInfo.Mode().Perm()
	targetFile, createError := deployer.fileSystem.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, permissions)
	if createError != nil {
		return createError
	}

	if _, copyError := io.Copy(targetFile, sourceFile); copyError != nil {
		_ = targetFile.Close()
		return copyError
	}
	if closeError := targetFile.Close(); closeError != nil {
		return closeError
	}

	return deployer.fileSystem.Chmod(targetPath, permissions)
}
