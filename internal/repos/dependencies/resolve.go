// Package dependencies fills in production collaborators for repository commands when callers leave them unset.
package dependencies

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/gitsh/internal/execshell"
	"github.com/temirov/gitsh/internal/repos/discovery"
	"github.com/temirov/gitsh/internal/repos/operations"
	"github.com/temirov/gitsh/internal/repos/policy"
	"github.com/temirov/gitsh/internal/repos/shared"
)

// Inputs carries optional overrides for repository collaborators.
type Inputs struct {
	Runner     execshell.CommandRunner
	FileSystem afero.Fs
	Clock      shared.Clock
	Terminator policy.Terminator
	Logger     *zap.Logger
	Directory  string
}

// RepositoryToolkit bundles the services a repository command needs.
type RepositoryToolkit struct {
	Service *operations.GuardedService
	Locator *discovery.Locator
}

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing afero.Fs) afero.Fs {
	if existing != nil {
		return existing
	}
	return afero.NewOsFs()
}

// ResolveClock returns the provided clock or the system clock.
func ResolveClock(existing shared.Clock) shared.Clock {
	if existing != nil {
		return existing
	}
	return shared.SystemClock{}
}

// ResolveLogger returns the provided logger or a no-op logger.
func ResolveLogger(existing *zap.Logger) *zap.Logger {
	if existing != nil {
		return existing
	}
	return zap.NewNop()
}

// ResolveCommandExecutor builds a shell executor bound to directory around the provided or OS-backed runner.
func ResolveCommandExecutor(runner execshell.CommandRunner, logger *zap.Logger, directory string) (shared.CommandExecutor, error) {
	if runner == nil {
		runner = execshell.NewOSCommandRunner()
	}
	shellExecutor, creationError := execshell.NewShellExecutor(ResolveLogger(logger), runner)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor.WithWorkingDirectory(directory), nil
}

// ResolveRepositoryToolkit wires the guarded repository service and the locator over one directory.
func ResolveRepositoryToolkit(inputs Inputs) (RepositoryToolkit, error) {
	logger := ResolveLogger(inputs.Logger)
	fileSystem := ResolveFileSystem(inputs.FileSystem)

	executor, executorError := ResolveCommandExecutor(inputs.Runner, logger, inputs.Directory)
	if executorError != nil {
		return RepositoryToolkit{}, executorError
	}

	service := operations.NewService(operations.Dependencies{
		Executor:   executor,
		FileSystem: fileSystem,
		Clock:      ResolveClock(inputs.Clock),
		Logger:     logger,
		Directory:  inputs.Directory,
	})
	exitPolicy := policy.NewExitPolicy(logger, inputs.Terminator)

	return RepositoryToolkit{
		Service: operations.NewGuardedService(service, exitPolicy, logger),
		Locator: discovery.NewLocator(fileSystem, inputs.Directory, logger),
	}, nil
}
