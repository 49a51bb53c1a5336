// Package deploy exposes the command that installs gitsh into a git-shell account.
package deploy

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	deployment "github.com/temirov/gitsh/internal/deploy"
	"github.com/temirov/gitsh/internal/repos/policy"
	pathutils "github.com/temirov/gitsh/internal/utils/path"
)

const (
	deployUseConstant              = "deploy"
	deployShortDescriptionConstant = "Install git-shell commands and templates"
	deployLongDescriptionConstant  = "deploy creates git-shell-commands/, git-template/ and git-template/hooks/ below the root, copies the command files from the source directory into them and installs the running gitsh binary next to the wrappers."
	rootFlagName                   = "root"
	rootFlagUsage                  = "Directory receiving the deploy tree (defaults to the home directory)"
	sourceFlagName                 = "source"
	sourceFlagUsage                = "Directory holding the files to install"
	manifestFlagName               = "manifest"
	manifestFlagUsage              = "YAML manifest replacing the built-in deploy tree"
	rootResolutionTemplate         = "unable to resolve deploy root: %w"
	sourceResolutionTemplate       = "unable to resolve deploy source: %w"
	manifestLoadTemplate           = "unable to load deploy manifest: %w"
	executableResolutionTemplate   = "unable to locate the gitsh executable: %w"
	deployFailureTemplate          = "deploy failed: %w"
	executableManifestFileConstant = "gitsh"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider yields the deploy configuration resolved at startup.
type ConfigurationProvider func() Configuration

// ExecutablePathProvider reports the path of the running gitsh binary.
type ExecutablePathProvider func() (string, error)

// CommandBuilder assembles the deploy command.
// The gitsh manifest entry is copied from the running executable rather than the source directory.
type CommandBuilder struct {
	LoggerProvider         LoggerProvider
	ConfigurationProvider  ConfigurationProvider
	FileSystem             afero.Fs
	HomeExpander           *pathutils.HomeExpander
	ExecutablePathProvider ExecutablePathProvider
	Terminator             policy.Terminator
}

// Build constructs the deploy command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   deployUseConstant,
		Short: deployShortDescriptionConstant,
		Long:  deployLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	command.Flags().String(rootFlagName, "", rootFlagUsage)
	command.Flags().String(sourceFlagName, "", sourceFlagUsage)
	command.Flags().String(manifestFlagName, "", manifestFlagUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	logger := builder.logger()
	deployError := builder.deploy(command, logger)
	policy.NewExitPolicy(logger, builder.Terminator).ExitOnErrorWithCode(policy.OperationDeploy, policy.DeployExitCode, func() error {
		return deployError
	})()
	return deployError
}

func (builder *CommandBuilder) deploy(command *cobra.Command, logger *zap.Logger) error {
	configuration := builder.configuration(command)

	expander := builder.HomeExpander
	if expander == nil {
		expander = pathutils.NewHomeExpander()
	}
	root, rootError := expander.Expand(configuration.Root)
	if rootError != nil {
		return fmt.Errorf(rootResolutionTemplate, rootError)
	}
	source, sourceError := expander.Expand(configuration.Source)
	if sourceError != nil {
		return fmt.Errorf(sourceResolutionTemplate, sourceError)
	}

	fileSystem := builder.FileSystem
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}

	manifest, manifestError := builder.manifest(fileSystem, configuration.Manifest, expander)
	if manifestError != nil {
		return fmt.Errorf(manifestLoadTemplate, manifestError)
	}

	executablePath, executableError := builder.executablePath()
	if executableError != nil {
		return fmt.Errorf(executableResolutionTemplate, executableError)
	}

	deployer := deployment.NewDeployer(fileSystem, logger)
	deployError := deployer.Deploy(deployment.Options{
		Root:            root,
		SourceDirectory: source,
		SourceOverrides: map[string]string{executableManifestFileConstant: executablePath},
		Manifest:        manifest,
	})
	if deployError != nil {
		return fmt.Errorf(deployFailureTemplate, deployError)
	}
	return nil
}

func (builder *CommandBuilder) configuration(command *cobra.Command) Configuration {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	if command.Flags().Changed(rootFlagName) {
		configuration.Root, _ = command.Flags().GetString(rootFlagName)
	}
	if command.Flags().Changed(sourceFlagName) {
		configuration.Source, _ = command.Flags().GetString(sourceFlagName)
	}
	if command.Flags().Changed(manifestFlagName) {
		configuration.Manifest, _ = command.Flags().GetString(manifestFlagName)
	}
	return configuration
}

func (builder *CommandBuilder) manifest(fileSystem afero.Fs, manifestPath string, expander *pathutils.HomeExpander) (deployment.Manifest, error) {
	if len(manifestPath) == 0 {
		return deployment.DefaultManifest()
	}
	expandedPath, expansionError := expander.Expand(manifestPath)
	if expansionError != nil {
		return deployment.Manifest{}, expansionError
	}
	return deployment.LoadManifest(fileSystem, expandedPath)
}

func (builder *CommandBuilder) executablePath() (string, error) {
	if builder.ExecutablePathProvider != nil {
		return builder.ExecutablePathProvider()
	}
	return os.Executable()
}

func (builder *CommandBuilder) logger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	if logger := builder.LoggerProvider(); logger != nil {
		return logger
	}
	return zap.NewNop()
}
