package execshell

import (
	"errors"
	"fmt"
)

const (
	commandFailedTemplateConstant          = "%s exited with code %d"
	commandExecutionFailedTemplateConstant = "%s could not be executed: %v"
	loggerNotConfiguredMessageConstant     = "shell executor requires a logger"
	runnerNotConfiguredMessageConstant     = "shell executor requires a command runner"
)

var (
	// ErrLoggerNotConfigured indicates that a nil logger was supplied.
	ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)
	// ErrCommandRunnerNotConfigured indicates that a nil runner was supplied.
	ErrCommandRunnerNotConfigured = errors.New(runnerNotConfiguredMessageConstant)
)

// ExternalCommandError reports an external tool that exited non-zero or could not be started.
type ExternalCommandError struct {
	Command  ShellCommand
	ExitCode int
	Cause    error
}

// Error describes the failure.
func (commandError ExternalCommandError) Error() string {
	if commandError.Cause != nil {
		return fmt.Sprintf(commandExecutionFailedTemplateConstant, commandError.Command, commandError.Cause)
	}
	return fmt.Sprintf(commandFailedTemplateConstant, commandError.Command, commandError.ExitCode)
}

// Unwrap exposes the underlying start failure, if any.
func (commandError ExternalCommandError) Unwrap() error {
	return commandError.Cause
}

// Exited reports whether the command ran and returned a non-zero status.
func (commandError ExternalCommandError) Exited() bool {
	return commandError.Cause == nil
}
