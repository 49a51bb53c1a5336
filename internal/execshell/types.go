package execshell

import (
	"context"
	"strings"
)

const (
	commandNameGitConstant        = "git"
	commandNameRemoveConstant     = "rm"
	commandNameMoveConstant       = "mv"
	commandNameTouchConstant      = "touch"
	commandNameTarConstant        = "tar"
	commandLabelSeparatorConstant = " "
)

// CommandName identifies a supported executable.
type CommandName string

// Supported executables.
const (
	CommandGit    CommandName = CommandName(commandNameGitConstant)
	CommandRemove CommandName = CommandName(commandNameRemoveConstant)
	CommandMove   CommandName = CommandName(commandNameMoveConstant)
	CommandTouch  CommandName = CommandName(commandNameTouchConstant)
	CommandTar    CommandName = CommandName(commandNameTarConstant)
)

// CommandDetails describes arguments and the working directory of an invocation.
type CommandDetails struct {
	Arguments        []string
	WorkingDirectory string
}

// ShellCommand combines a CommandName with specific details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// String renders the command the way it would be typed in a shell.
func (command ShellCommand) String() string {
	parts := append([]string{string(command.Name)}, command.Details.Arguments...)
	return strings.Join(parts, commandLabelSeparatorConstant)
}

// ExecutionResult captures the observable results of executing a command.
type ExecutionResult struct {
	StandardOutput string
	ExitCode       int
}

// CommandRunner runs a single command to completion.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}
