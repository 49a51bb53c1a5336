package repos

import (
	"github.com/spf13/cobra"
)

const (
	removeUseConstant              = "remove <name>..."
	removeShortDescriptionConstant = "Remove repositories"
	removeLongDescriptionConstant  = "remove deletes each named repository directory. Every name must refer to an existing repository before anything is removed."
	removeBackupFlagName           = "backup"
	removeBackupFlagUsage          = "Archive each repository before removing it"
)

func (builder *CommandBuilder) buildRemoveCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     removeUseConstant,
		Short:   removeShortDescriptionConstant,
		Long:    removeLongDescriptionConstant,
		Args:    cobra.MinimumNArgs(1),
		GroupID: repositoryCommandGroupIdentifier,
		RunE:    builder.runRemove,
	}

	command.Flags().Bool(removeBackupFlagName, false, removeBackupFlagUsage)

	return command
}

func (builder *CommandBuilder) runRemove(command *cobra.Command, arguments []string) error {
	names := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		name, nameError := parseName(repositoryArgumentLabelConstant, argument)
		if nameError != nil {
			return nameError
		}
		names = append(names, name)
	}

	toolkit, toolkitError := builder.toolkit(command, arguments)
	if toolkitError != nil {
		return toolkitError
	}
	for _, name := range names {
		if missingError := requireRepository(toolkit, name); missingError != nil {
			return missingError
		}
	}

	backupFirst, _ := command.Flags().GetBool(removeBackupFlagName)
	for _, name := range names {
		if backupFirst {
			toolkit.Service.Backup(command.Context(), name)
		}
		toolkit.Service.Remove(command.Context(), name)
	}

	return nil
}
