package repos

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	backupUseConstant              = "backup <name>..."
	backupShortDescriptionConstant = "Archive repositories"
	backupLongDescriptionConstant  = "backup packs each named repository directory into <name>.<unix-time>.backup.tar.bz2 and prints the archive name."
	backupOutputTemplateConstant   = "%s\n"
)

func (builder *CommandBuilder) buildBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:     backupUseConstant,
		Short:   backupShortDescriptionConstant,
		Long:    backupLongDescriptionConstant,
		Args:    cobra.MinimumNArgs(1),
		GroupID: repositoryCommandGroupIdentifier,
		RunE:    builder.runBackup,
	}
}

func (builder *CommandBuilder) runBackup(command *cobra.Command, arguments []string) error {
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

	for _, name := range names {
		archiveName := toolkit.Service.Backup(command.Context(), name)
		fmt.Fprintf(command.OutOrStdout(), backupOutputTemplateConstant, archiveName)
	}
	return nil
}
