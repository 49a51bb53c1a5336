package tests

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	integrationTimeout                = 2 * time.Minute
	integrationGoExecutable           = "go"
	integrationRunSubcommand          = "run"
	integrationModulePathConstant     = "."
	integrationLogLevelFlag           = "--log-level"
	integrationErrorLevel             = "error"
	integrationEnvironmentAssignment  = "="
	integrationMissingToolSkipMessage = "required executable not available: "
)

// integrationRun invokes the gitsh entrypoint through go run and returns its combined output.
type integrationRun struct {
	repositoryRoot string
	environment    map[string]string
}

func newIntegrationRun(testInstance *testing.T, environment map[string]string) integrationRun {
	testInstance.Helper()

	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	return integrationRun{repositoryRoot: filepath.Dir(workingDirectory), environment: environment}
}

func (run integrationRun) execute(testInstance *testing.T, arguments ...string) (string, error) {
	testInstance.Helper()

	executionContext, cancel := context.WithTimeout(context.Background(), integrationTimeout)
	defer cancel()

	commandArguments := append([]string{integrationRunSubcommand, integrationModulePathConstant, integrationLogLevelFlag, integrationErrorLevel}, arguments...)
	command := exec.CommandContext(executionContext, integrationGoExecutable, commandArguments...)
	command.Dir = run.repositoryRoot
	environment := append([]string{}, os.Environ()...)
	for environmentName, environmentValue := range run.environment {
		environment = append(environment, environmentName+integrationEnvironmentAssignment+environmentValue)
	}
	command.Env = environment

	outputBytes, runError := command.CombinedOutput()
	return string(outputBytes), runError
}

func (run integrationRun) mustExecute(testInstance *testing.T, arguments ...string) string {
	testInstance.Helper()

	output, runError := run.execute(testInstance, arguments...)
	if runError != nil {
		testInstance.Fatalf("command failed: %v\n%s", runError, output)
	}
	return output
}

func requireExecutables(testInstance *testing.T, executables ...string) {
	testInstance.Helper()

	for _, executable := range executables {
		if _, lookupError := exec.LookPath(executable); lookupError != nil {
			testInstance.Skip(integrationMissingToolSkipMessage + executable)
		}
	}
}

func requirePathExists(testInstance *testing.T, path string, expected bool) {
	testInstance.Helper()

	_, statError := os.Stat(path)
	if expected {
		require.NoError(testInstance, statError, path)
		return
	}
	require.True(testInstance, os.IsNotExist(statError), path)
}
