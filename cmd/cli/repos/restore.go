package repos

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

const (
	restoreUseConstant              = "restore <archive>"
	restoreShortDescriptionConstant = "Restore a repository from a backup archive"
	restoreLongDescriptionConstant  = "restore extracts a backup archive listed by \"list --backups\" into the repositories directory."
	restoreRemoveFlagName           = "remove-archive"
	restoreRemoveFlagUsage          = "Delete the archive after a successful restore"
)

// ErrBackupMissing indicates that a command referenced a backup archive that does not exist.
var ErrBackupMissing = errors.New("backup archive does not exist")

func (builder *CommandBuilder) buildRestoreCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     restoreUseConstant,
		Short:   restoreShortDescriptionConstant,
		Long:    restoreLongDescriptionConstant,
		Args:    cobra.ExactArgs(1),
		GroupID: repositoryCommandGroupIdentifier,
		RunE:    builder.runRestore,
	}

	command.Flags().Bool(restoreRemoveFlagName, false, restoreRemoveFlagUsage)

	return command
}

func (builder *CommandBuilder) runRestore(command *cobra.Command, arguments []string) error {
	archiveName, archiveError := parseName(archiveArgumentLabelConstant, arguments[0])
	if archiveError != nil {
		return archiveError
	}

	toolkit, toolkitError := builder.toolkit(command, arguments)
	if toolkitError != nil {
		return toolkitError
	}

	backups, findError := toolkit.Locator.FindBackups("")
	if findError != nil {
		return findError
	}
	if !slices.Contains(backups, archiveName) {
		return fmt.Errorf(repositoryErrorTemplateConstant, ErrBackupMissing, archiveName)
	}

	toolkit.Service.Restore(command.Context(), archiveName)

	removeArchive, _ := command.Flags().GetBool(restoreRemoveFlagName)
	if removeArchive {
		toolkit.Service.RemoveBackup(command.Context(), archiveName)
	}
	return nil
}
