package execshell_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/gitsh/internal/execshell"
)

const (
	testExecutionSuccessCaseNameConstant         = "success"
	testExecutionFailureCaseNameConstant         = "failure_exit_code"
	testExecutionRunnerErrorCaseNameConstant     = "runner_error"
	testLoggerInitializationCaseNameConstant     = "logger_validation"
	testRunnerInitializationCaseNameConstant     = "runner_validation"
	testSuccessfulInitializationCaseNameConstant = "successful_initialization"
	testRepositoryDirectoryConstant              = "demo.git"
	testWorkingDirectoryConstant                 = "/srv/git"
	testDescriptionOutputConstant                = "Demo repository"
)

type recordingCommandRunner struct {
	executionResult  execshell.ExecutionResult
	executionError   error
	recordedCommands []execshell.ShellCommand
}

func (runner *recordingCommandRunner) Run(_ context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error) {
	runner.recordedCommands = append(runner.recordedCommands, command)
	return runner.executionResult, runner.executionError
}

func TestShellExecutorInitializationValidation(testInstance *testing.T) {
	testCases := []struct {
		name          string
		logger        *zap.Logger
		runner        execshell.CommandRunner
		expectError   error
		expectSuccess bool
	}{
		{
			name:        testLoggerInitializationCaseNameConstant,
			logger:      nil,
			runner:      &recordingCommandRunner{},
			expectError: execshell.ErrLoggerNotConfigured,
		},
		{
			name:        testRunnerInitializationCaseNameConstant,
			logger:      zap.NewNop(),
			runner:      nil,
			expectError: execshell.ErrCommandRunnerNotConfigured,
		},
		{
			name:          testSuccessfulInitializationCaseNameConstant,
			logger:        zap.NewNop(),
			runner:        &recordingCommandRunner{},
			expectSuccess: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor, creationError := execshell.NewShellExecutor(testCase.logger, testCase.runner)
			if testCase.expectSuccess {
				require.NoError(testInstance, creationError)
				require.NotNil(testInstance, executor)
			} else {
				require.ErrorIs(testInstance, creationError, testCase.expectError)
			}
		})
	}
}

func TestShellExecutorCallBehavior(testInstance *testing.T) {
	testCases := []struct {
		name             string
		runnerResult     execshell.ExecutionResult
		runnerError      error
		expectError      bool
		expectExited     bool
		expectedExitCode int
	}{
		{
			name:         testExecutionSuccessCaseNameConstant,
			runnerResult: execshell.ExecutionResult{ExitCode: 0},
		},
		{
			name:             testExecutionFailureCaseNameConstant,
			runnerResult:     execshell.ExecutionResult{ExitCode: 128},
			expectError:      true,
			expectExited:     true,
			expectedExitCode: 128,
		},
		{
			name:        testExecutionRunnerErrorCaseNameConstant,
			runnerError: exec.ErrNotFound,
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observerLogs := observer.New(zap.DebugLevel)
			recordingRunner := &recordingCommandRunner{
				executionResult: testCase.runnerResult,
				executionError:  testCase.runnerError,
			}

			executor, creationError := execshell.NewShellExecutor(zap.New(observerCore), recordingRunner)
			require.NoError(testInstance, creationError)

			callError := executor.Call(context.Background(), execshell.CommandGit, "init", "--bare", testRepositoryDirectoryConstant)

			require.Len(testInstance, recordingRunner.recordedCommands, 1)
			recordedCommand := recordingRunner.recordedCommands[0]
			require.Equal(testInstance, execshell.CommandGit, recordedCommand.Name)
			require.Equal(testInstance, []string{"init", "--bare", testRepositoryDirectoryConstant}, recordedCommand.Details.Arguments)
			require.Len(testInstance, observerLogs.All(), 2)

			if !testCase.expectError {
				require.NoError(testInstance, callError)
				return
			}

			var commandError execshell.ExternalCommandError
			require.True(testInstance, errors.As(callError, &commandError))
			require.Equal(testInstance, testCase.expectExited, commandError.Exited())
			require.Equal(testInstance, testCase.expectedExitCode, commandError.ExitCode)
			if testCase.runnerError != nil {
				require.ErrorIs(testInstance, callError, testCase.runnerError)
			}
		})
	}
}

func TestShellExecutorOutputTrimsTrailingWhitespace(testInstance *testing.T) {
	recordingRunner := &recordingCommandRunner{
		executionResult: execshell.ExecutionResult{StandardOutput: testDescriptionOutputConstant + "\n\n"},
	}

	executor, creationError := execshell.NewShellExecutor(zap.NewNop(), recordingRunner)
	require.NoError(testInstance, creationError)

	output, outputError := executor.Output(context.Background(), execshell.CommandGit, "config", "gitweb.description")
	require.NoError(testInstance, outputError)
	require.Equal(testInstance, testDescriptionOutputConstant, output)
}

func TestShellExecutorOutputDropsStandardOutputOnFailure(testInstance *testing.T) {
	recordingRunner := &recordingCommandRunner{
		executionResult: execshell.ExecutionResult{StandardOutput: testDescriptionOutputConstant, ExitCode: 1},
	}

	executor, creationError := execshell.NewShellExecutor(zap.NewNop(), recordingRunner)
	require.NoError(testInstance, creationError)

	output, outputError := executor.Output(context.Background(), execshell.CommandGit, "config", "gitweb.owner")
	require.Error(testInstance, outputError)
	require.Empty(testInstance, output)
}

func TestShellExecutorWithWorkingDirectory(testInstance *testing.T) {
	recordingRunner := &recordingCommandRunner{}

	executor, creationError := execshell.NewShellExecutor(zap.NewNop(), recordingRunner)
	require.NoError(testInstance, creationError)

	scopedExecutor := executor.WithWorkingDirectory(testWorkingDirectoryConstant)
	require.NoError(testInstance, scopedExecutor.Call(context.Background(), execshell.CommandTouch, testRepositoryDirectoryConstant))
	require.NoError(testInstance, executor.Call(context.Background(), execshell.CommandTouch, testRepositoryDirectoryConstant))

	require.Len(testInstance, recordingRunner.recordedCommands, 2)
	require.Equal(testInstance, testWorkingDirectoryConstant, recordingRunner.recordedCommands[0].Details.WorkingDirectory)
	require.Empty(testInstance, recordingRunner.recordedCommands[1].Details.WorkingDirectory)
}

func TestShellCommandString(testInstance *testing.T) {
	command := execshell.ShellCommand{
		Name:    execshell.CommandTar,
		Details: execshell.CommandDetails{Arguments: []string{"-xjf", "demo.1.backup.tar.bz2"}},
	}
	require.Equal(testInstance, "tar -xjf demo.1.backup.tar.bz2", command.String())
}
