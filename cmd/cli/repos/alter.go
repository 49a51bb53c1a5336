package repos

import (
	"errors"

	"github.com/spf13/cobra"

	flagutils "github.com/temirov/gitsh/internal/utils/flags"
)

const (
	alterUseConstant              = "alter <name>"
	alterShortDescriptionConstant = "Change repository metadata"
	alterLongDescriptionConstant  = "alter updates the gitweb description, the gitweb owner and the git-daemon-export-ok marker of a repository."
	alterDescriptionFlagName      = "description"
	alterDescriptionFlagUsage     = "New repository description"
	alterOwnerFlagName            = "owner"
	alterOwnerFlagUsage           = "New repository owner"
	alterPrivateFlagName          = "private"
	alterPrivateFlagUsage         = "Add (yes) or remove (no) the git-daemon-export-ok marker"
	alterNothingMessageConstant   = "nothing to alter; pass --description, --owner or --private"
)

// ErrNothingToAlter indicates that alter was invoked without any change.
var ErrNothingToAlter = errors.New(alterNothingMessageConstant)

func (builder *CommandBuilder) buildAlterCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     alterUseConstant,
		Short:   alterShortDescriptionConstant,
		Long:    alterLongDescriptionConstant,
		Args:    cobra.ExactArgs(1),
		GroupID: repositoryCommandGroupIdentifier,
	}

	command.Flags().String(alterDescriptionFlagName, "", alterDescriptionFlagUsage)
	command.Flags().String(alterOwnerFlagName, "", alterOwnerFlagUsage)
	privateToggle := flagutils.AddToggleFlag(command.Flags(), alterPrivateFlagName, "", alterPrivateFlagUsage)

	command.RunE = func(command *cobra.Command, arguments []string) error {
		return builder.runAlter(command, arguments, privateToggle)
	}

	return command
}

func (builder *CommandBuilder) runAlter(command *cobra.Command, arguments []string, privateToggle *flagutils.Toggle) error {
	descriptionChanged := command.Flags().Changed(alterDescriptionFlagName)
	ownerChanged := command.Flags().Changed(alterOwnerFlagName)
	if !descriptionChanged && !ownerChanged && !privateToggle.Provided {
		return ErrNothingToAlter
	}

	name, nameError := parseName(repositoryArgumentLabelConstant, arguments[0])
	if nameError != nil {
		return nameError
	}

	toolkit, toolkitError := builder.toolkit(command, arguments)
	if toolkitError != nil {
		return toolkitError
	}
	if missingError := requireRepository(toolkit, name); missingError != nil {
		return missingError
	}

	executionContext := command.Context()
	if descriptionChanged {
		description, _ := command.Flags().GetString(alterDescriptionFlagName)
		toolkit.Service.SetDescription(executionContext, name, description)
	}
	if ownerChanged {
		owner, _ := command.Flags().GetString(alterOwnerFlagName)
		toolkit.Service.SetOwner(executionContext, name, owner)
	}
	if privateToggle.Provided {
		toolkit.Service.SetPrivate(executionContext, name, privateToggle.Value)
	}
	return nil
}
