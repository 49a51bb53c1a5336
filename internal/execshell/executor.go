package execshell

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	commandStartedMessageConstant    = "running external command"
	commandCompletedMessageConstant  = "external command completed"
	commandFailedMessageConstant     = "external command failed"
	logFieldCommandConstant          = "command"
	logFieldWorkingDirectoryConstant = "working_directory"
	logFieldExitCodeConstant         = "exit_code"
	outputTrimCharactersConstant     = " \t\r\n"
)

// ShellExecutor runs external commands synchronously and translates failures into ExternalCommandError.
type ShellExecutor struct {
	logger           *zap.Logger
	runner           CommandRunner
	workingDirectory string
}

// NewShellExecutor constructs a ShellExecutor from a logger and a runner.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	return &ShellExecutor{logger: logger, runner: runner}, nil
}

// WithWorkingDirectory returns a copy of the executor that runs every command in directory.
func (executor *ShellExecutor) WithWorkingDirectory(directory string) *ShellExecutor {
	duplicate := *executor
	duplicate.workingDirectory = directory
	return &duplicate
}

// Call runs the command and discards its output.
func (executor *ShellExecutor) Call(executionContext context.Context, name CommandName, arguments ...string) error {
	_, executionError := executor.execute(executionContext, name, arguments)
	return executionError
}

// Output runs the command and returns its standard output without trailing whitespace.
func (executor *ShellExecutor) Output(executionContext context.Context, name CommandName, arguments ...string) (string, error) {
	executionResult, executionError := executor.execute(executionContext, name, arguments)
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimRight(executionResult.StandardOutput, outputTrimCharactersConstant), nil
}

func (executor *ShellExecutor) execute(executionContext context.Context, name CommandName, arguments []string) (ExecutionResult, error) {
	command := ShellCommand{
		Name: name,
		Details: CommandDetails{
			Arguments:        append([]string{}, arguments...),
			WorkingDirectory: executor.workingDirectory,
		},
	}

	executor.logger.Debug(
		commandStartedMessageConstant,
		zap.Stringer(logFieldCommandConstant, command),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
	)

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executor.logger.Debug(commandFailedMessageConstant, zap.Stringer(logFieldCommandConstant, command), zap.Error(runError))
		return ExecutionResult{}, ExternalCommandError{Command: command, Cause: runError}
	}

	if executionResult.ExitCode != 0 {
		executor.logger.Debug(commandFailedMessageConstant, zap.Stringer(logFieldCommandConstant, command), zap.Int(logFieldExitCodeConstant, executionResult.ExitCode))
		return ExecutionResult{}, ExternalCommandError{Command: command, ExitCode: executionResult.ExitCode}
	}

	executor.logger.Debug(commandCompletedMessageConstant, zap.Stringer(logFieldCommandConstant, command))
	return executionResult, nil
}
