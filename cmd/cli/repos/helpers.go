package repos

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitsh/internal/execshell"
	"github.com/temirov/gitsh/internal/repos/dependencies"
	"github.com/temirov/gitsh/internal/repos/policy"
	"github.com/temirov/gitsh/internal/repos/shared"
	pathutils "github.com/temirov/gitsh/internal/utils/path"
)

const (
	invalidArgumentTemplateConstant     = "invalid %s %q: %w"
	repositoryErrorTemplateConstant     = "%w: %s"
	directoryExpansionTemplateConstant  = "unable to resolve repository directory: %w"
	repositoryArgumentLabelConstant     = "repository name"
	newRepositoryArgumentLabelConstant  = "new repository name"
	archiveArgumentLabelConstant        = "backup archive"
	sourceURIArgumentLabelConstant      = "source URI"
	prefixArgumentLabelConstant         = "prefix"
	logFieldRepositoryDirectoryConstant = "repositories_directory"
	repositoryCommandStartedMessage     = "repository command"
	logFieldRepositoryCommandNameField  = "command_name"
	logFieldRepositoryCommandArgsField  = "arguments"
	repositoryCommandGroupIdentifier    = "repositories"
	repositoryCommandGroupTitleConstant = "Repository commands:"
	booleanDisplayYesConstant           = "yes"
	booleanDisplayNoConstant            = "no"
)

var (
	// ErrRepositoryMissing indicates that a command referenced a repository that does not exist.
	ErrRepositoryMissing = errors.New("repository does not exist")
	// ErrRepositoryExists indicates that a command would overwrite an existing repository.
	ErrRepositoryExists = errors.New("repository already exists")
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider yields the repository configuration resolved at startup.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the repository commands exposed through git-shell.
// Collaborator fields are optional; production defaults are used when they are nil.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Runner                execshell.CommandRunner
	FileSystem            afero.Fs
	Clock                 shared.Clock
	Terminator            policy.Terminator
	HomeExpander          *pathutils.HomeExpander
}

// Build constructs every repository command.
func (builder *CommandBuilder) Build() ([]*cobra.Command, error) {
	return []*cobra.Command{
		builder.buildCreateCommand(),
		builder.buildRemoveCommand(),
		builder.buildRenameCommand(),
		builder.buildBackupCommand(),
		builder.buildRestoreCommand(),
		builder.buildPurgeCommand(),
		builder.buildAlterCommand(),
		builder.buildListCommand(),
	}, nil
}

// CommandGroup describes the help group repository commands belong to.
func CommandGroup() *cobra.Group {
	return &cobra.Group{ID: repositoryCommandGroupIdentifier, Title: repositoryCommandGroupTitleConstant}
}

func (builder *CommandBuilder) toolkit(command *cobra.Command, arguments []string) (dependencies.RepositoryToolkit, error) {
	directory, directoryError := builder.repositoryDirectory()
	if directoryError != nil {
		return dependencies.RepositoryToolkit{}, directoryError
	}

	logger := resolveLogger(builder.LoggerProvider)
	logger.Debug(
		repositoryCommandStartedMessage,
		zap.String(logFieldRepositoryCommandNameField, command.Name()),
		zap.Strings(logFieldRepositoryCommandArgsField, arguments),
		zap.String(logFieldRepositoryDirectoryConstant, directory),
	)

	return dependencies.ResolveRepositoryToolkit(dependencies.Inputs{
		Runner:     builder.Runner,
		FileSystem: builder.FileSystem,
		Clock:      builder.Clock,
		Terminator: builder.Terminator,
		Logger:     logger,
		Directory:  directory,
	})
}

func (builder *CommandBuilder) repositoryDirectory() (string, error) {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	expander := builder.HomeExpander
	if expander == nil {
		expander = pathutils.NewHomeExpander()
	}
	directory, expansionError := expander.Expand(configuration.Directory)
	if expansionError != nil {
		return "", fmt.Errorf(directoryExpansionTemplateConstant, expansionError)
	}
	return directory, nil
}

func parseName(label string, raw string) (string, error) {
	name, nameError := shared.NewName(raw)
	if nameError != nil {
		return "", fmt.Errorf(invalidArgumentTemplateConstant, label, raw, nameError)
	}
	return name.String(), nil
}

func parseArgument(label string, raw string) (string, error) {
	argument, argumentError := shared.NewArgument(raw)
	if argumentError != nil {
		return "", fmt.Errorf(invalidArgumentTemplateConstant, label, raw, argumentError)
	}
	return argument.String(), nil
}

func requireRepository(toolkit dependencies.RepositoryToolkit, name string) error {
	if !toolkit.Locator.RepositoryExists(name) {
		return fmt.Errorf(repositoryErrorTemplateConstant, ErrRepositoryMissing, name)
	}
	return nil
}

func requireAbsentRepository(toolkit dependencies.RepositoryToolkit, name string) error {
	if toolkit.Locator.RepositoryExists(name) {
		return fmt.Errorf(repositoryErrorTemplateConstant, ErrRepositoryExists, name)
	}
	return nil
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func formatBoolean(value bool) string {
	if value {
		return booleanDisplayYesConstant
	}
	return booleanDisplayNoConstant
}
