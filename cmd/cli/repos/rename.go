package repos

import (
	"github.com/spf13/cobra"
)

const (
	renameUseConstant              = "rename <name> <new-name>"
	renameShortDescriptionConstant = "Rename a repository"
	renameLongDescriptionConstant  = "rename moves the repository directory for <name> to <new-name>.git. The target must not exist."
)

func (builder *CommandBuilder) buildRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:     renameUseConstant,
		Short:   renameShortDescriptionConstant,
		Long:    renameLongDescriptionConstant,
		Args:    cobra.ExactArgs(2),
		GroupID: repositoryCommandGroupIdentifier,
		RunE:    builder.runRename,
	}
}

func (builder *CommandBuilder) runRename(command *cobra.Command, arguments []string) error {
	name, nameError := parseName(repositoryArgumentLabelConstant, arguments[0])
	if nameError != nil {
		return nameError
	}
	newName, newNameError := parseName(newRepositoryArgumentLabelConstant, arguments[1])
	if newNameError != nil {
		return newNameError
	}

	toolkit, toolkitError := builder.toolkit(command, arguments)
	if toolkitError != nil {
		return toolkitError
	}
	if missingError := requireRepository(toolkit, name); missingError != nil {
		return missingError
	}
	if existsError := requireAbsentRepository(toolkit, newName); existsError != nil {
		return existsError
	}

	toolkit.Service.Rename(command.Context(), name, newName)
	return nil
}
