package operations

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/gitsh/internal/execshell"
	"github.com/temirov/gitsh/internal/repos/naming"
	"github.com/temirov/gitsh/internal/repos/shared"
)

const (
	gitInitSubcommandConstant           = "init"
	gitCloneSubcommandConstant          = "clone"
	gitConfigSubcommandConstant         = "config"
	gitBareFlagConstant                 = "--bare"
	gitDirectoryFlagTemplateConstant    = "--git-dir=%s"
	removeRecursiveFlagConstant         = "-rf"
	removeForceFlagConstant             = "-f"
	tarCreateFlagsConstant              = "-cjf"
	tarExtractFlagsConstant             = "-xjf"
	descriptionConfigKeyConstant        = "gitweb.description"
	ownerConfigKeyConstant              = "gitweb.owner"
	gitConfigMissingKeyExitCode         = 1
	configurationMissingMessageConstant = "configuration key not set"

	repositoryCreatedMessageConstant      = "new repository directory created"
	repositoryClonedMessageConstant       = "cloned repository into repository directory"
	repositoryRemovedMessageConstant      = "repository directory removed"
	repositoryRenamedMessageConstant      = "repository directory renamed"
	repositoryBackedUpMessageConstant     = "repository directory backed up"
	backupRestoredMessageConstant         = "restored from backup archive"
	backupRemovedMessageConstant          = "backup archive removed"
	descriptionUpdatedMessageConstant     = "repository description updated"
	ownerUpdatedMessageConstant           = "repository owner updated"
	privateUpdatedMessageConstant         = "repository private flag updated"
	logFieldRepositoryDirectoryConstant   = "repository_directory"
	logFieldTargetDirectoryConstant       = "target_directory"
	logFieldSourceConstant                = "source"
	logFieldArchiveConstant               = "archive"
	logFieldDescriptionConstant           = "description"
	logFieldOwnerConstant                 = "owner"
	logFieldPrivateConstant               = "private"
	configurationKeyErrorTemplateConstant = "%s %s: %w"
)

// ErrConfigurationMissing reports that a requested git configuration key is not set.
var ErrConfigurationMissing = errors.New(configurationMissingMessageConstant)

// Dependencies supplies collaborators required by Service.
type Dependencies struct {
	Executor   shared.CommandExecutor
	FileSystem afero.Fs
	Clock      shared.Clock
	Logger     *zap.Logger
	// Directory holds repositories and backups. Empty means the working directory.
	Directory string
}

// Service runs repository operations and reports failures as errors.
type Service struct {
	dependencies Dependencies
}

// NewService constructs a Service, filling in defaults for optional dependencies.
func NewService(dependencies Dependencies) *Service {
	if dependencies.FileSystem == nil {
		dependencies.FileSystem = afero.NewOsFs()
	}
	if dependencies.Clock == nil {
		dependencies.Clock = shared.SystemClock{}
	}
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	return &Service{dependencies: dependencies}
}

// Create initializes an empty bare repository.
func (service *Service) Create(executionContext context.Context, name string) error {
	directoryName := naming.Canonicalize(name)
	if callError := service.call(executionContext, execshell.CommandGit, gitInitSubcommandConstant, gitBareFlagConstant, directoryName); callError != nil {
		return callError
	}
	service.dependencies.Logger.Info(repositoryCreatedMessageConstant, zap.String(logFieldRepositoryDirectoryConstant, directoryName))
	return nil
}

// CreateFromRemote clones sourceURI as a bare repository.
func (service *Service) CreateFromRemote(executionContext context.Context, name string, sourceURI string) error {
	directoryName := naming.Canonicalize(name)
	if callError := service.call(executionContext, execshell.CommandGit, gitCloneSubcommandConstant, gitBareFlagConstant, sourceURI, directoryName); callError != nil {
		return callError
	}
	service.dependencies.Logger.Info(
		repositoryClonedMessageConstant,
		zap.String(logFieldSourceConstant, sourceURI),
		zap.String(logFieldRepositoryDirectoryConstant, directoryName),
	)
	return nil
}

// Remove deletes a repository directory recursively.
func (service *Service) Remove(executionContext context.Context, name string) error {
	directoryName := naming.Canonicalize(name)
	if callError := service.call(executionContext, execshell.CommandRemove, removeRecursiveFlagConstant, directoryName); callError != nil {
		return callError
	}
	service.dependencies.Logger.Info(repositoryRemovedMessageConstant, zap.String(logFieldRepositoryDirectoryConstant, directoryName))
	return nil
}

// Rename moves a repository directory to the canonical directory of newName.
func (service *Service) Rename(executionContext context.Context, name string, newName string) error {
	directoryName := naming.Canonicalize(name)
	targetDirectoryName := naming.Canonicalize(newName)
	if callError := service.call(executionContext, execshell.CommandMove, directoryName, targetDirectoryName); callError != nil {
		return callError
	}
	service.dependencies.Logger.Info(
		repositoryRenamedMessageConstant,
		zap.String(logFieldRepositoryDirectoryConstant, directoryName),
		zap.String(logFieldTargetDirectoryConstant, targetDirectoryName),
	)
	return nil
}

// Backup archives a repository directory and returns the archive name.
func (service *Service) Backup(executionContext context.Context, name string) (string, error) {
	directoryName := naming.Canonicalize(name)
	archiveName := naming.BackupArchiveName(directoryName, service.dependencies.Clock.Now())
	if callError := service.call(executionContext, execshell.CommandTar, tarCreateFlagsConstant, archiveName, directoryName); callError != nil {
		return "", callError
	}
	service.dependencies.Logger.Info(
		repositoryBackedUpMessageConstant,
		zap.String(logFieldRepositoryDirectoryConstant, directoryName),
		zap.String(logFieldArchiveConstant, archiveName),
	)
	return archiveName, nil
}

// Restore extracts a backup archive into the repository directory.
func (service *Service) Restore(executionContext context.Context, archiveName string) error {
	if callError := service.call(executionContext, execshell.CommandTar, tarExtractFlagsConstant, archiveName); callError != nil {
		return callError
	}
	service.dependencies.Logger.Info(backupRestoredMessageConstant, zap.String(logFieldArchiveConstant, archiveName))
	return nil
}

// RemoveBackup deletes a backup archive.
func (service *Service) RemoveBackup(executionContext context.Context, archiveName string) error {
	if callError := service.call(executionContext, execshell.CommandRemove, removeForceFlagConstant, archiveName); callError != nil {
		return callError
	}
	service.dependencies.Logger.Info(backupRemovedMessageConstant, zap.String(logFieldArchiveConstant, archiveName))
	return nil
}

// SetDescription stores text as gitweb.description.
func (service *Service) SetDescription(executionContext context.Context, name string, text string) error {
	directoryName := naming.Canonicalize(name)
	if configError := service.writeConfiguration(executionContext, directoryName, descriptionConfigKeyConstant, text); configError != nil {
		return configError
	}
	service.dependencies.Logger.Info(
		descriptionUpdatedMessageConstant,
		zap.String(logFieldRepositoryDirectoryConstant, directoryName),
		zap.String(logFieldDescriptionConstant, text),
	)
	return nil
}

// Description reads gitweb.description, returning ErrConfigurationMissing when unset.
func (service *Service) Description(executionContext context.Context, name string) (string, error) {
	return service.readConfiguration(executionContext, naming.Canonicalize(name), descriptionConfigKeyConstant)
}

// SetOwner stores text as gitweb.owner.
func (service *Service) SetOwner(executionContext context.Context, name string, text string) error {
	directoryName := naming.Canonicalize(name)
	if configError := service.writeConfiguration(executionContext, directoryName, ownerConfigKeyConstant, text); configError != nil {
		return configError
	}
	service.dependencies.Logger.Info(
		ownerUpdatedMessageConstant,
		zap.String(logFieldRepositoryDirectoryConstant, directoryName),
		zap.String(logFieldOwnerConstant, text),
	)
	return nil
}

// Owner reads gitweb.owner, returning ErrConfigurationMissing when unset.
func (service *Service) Owner(executionContext context.Context, name string) (string, error) {
	return service.readConfiguration(executionContext, naming.Canonicalize(name), ownerConfigKeyConstant)
}

// SetPrivate writes the git-daemon-export-ok marker when state is true and removes it otherwise.
// The marker allows git-daemon to export the repository, so state true leaves the repository exported.
func (service *Service) SetPrivate(executionContext context.Context, name string, state bool) error {
	directoryName := naming.Canonicalize(name)
	markerPath := filepath.Join(directoryName, naming.ExportMarkerFileName)

	var callError error
	if state {
		callError = service.call(executionContext, execshell.CommandTouch, markerPath)
	} else {
		callError = service.call(executionContext, execshell.CommandRemove, removeRecursiveFlagConstant, markerPath)
	}
	if callError != nil {
		return callError
	}

	service.dependencies.Logger.Info(
		privateUpdatedMessageConstant,
		zap.String(logFieldRepositoryDirectoryConstant, directoryName),
		zap.Bool(logFieldPrivateConstant, state),
	)
	return nil
}

// Private reports whether the git-daemon-export-ok marker exists inside filename.
// filename is used as given, without canonicalization.
func (service *Service) Private(filename string) bool {
	markerPath := service.resolve(filepath.Join(filename, naming.ExportMarkerFileName))
	exists, statError := afero.Exists(service.dependencies.FileSystem, markerPath)
	return statError == nil && exists
}

func (service *Service) writeConfiguration(executionContext context.Context, directoryName string, key string, value string) error {
	return service.call(executionContext, execshell.CommandGit, fmt.Sprintf(gitDirectoryFlagTemplateConstant, directoryName), gitConfigSubcommandConstant, key, value)
}

func (service *Service) readConfiguration(executionContext context.Context, directoryName string, key string) (string, error) {
	value, outputError := service.dependencies.Executor.Output(
		executionContext,
		execshell.CommandGit,
		fmt.Sprintf(gitDirectoryFlagTemplateConstant, directoryName),
		gitConfigSubcommandConstant,
		key,
	)
	if outputError == nil {
		return value, nil
	}

	var commandError execshell.ExternalCommandError
	if errors.As(outputError, &commandError) && commandError.Exited() && commandError.ExitCode == gitConfigMissingKeyExitCode {
		return "", fmt.Errorf(configurationKeyErrorTemplateConstant, directoryName, key, ErrConfigurationMissing)
	}
	return "", outputError
}

func (service *Service) call(executionContext context.Context, name execshell.CommandName, arguments ...string) error {
	return service.dependencies.Executor.Call(executionContext, name, arguments...)
}

func (service *Service) resolve(path string) string {
	if len(service.dependencies.Directory) == 0 {
		return path
	}
	return filepath.Join(service.dependencies.Directory, path)
}
