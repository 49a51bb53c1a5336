package repos

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/temirov/gitsh/internal/repos/naming"
)

const (
	purgeUseConstant              = "purge [name...]"
	purgeShortDescriptionConstant = "Delete backup archives"
	purgeLongDescriptionConstant  = "purge deletes every backup archive of the named repositories. Use --all to delete every archive in the repositories directory."
	purgeAllFlagName              = "all"
	purgeAllFlagUsage             = "Delete all backup archives"
	purgeArgumentsMessageConstant = "specify repository names or --all"
)

// ErrPurgeTargetMissing indicates that purge was invoked without names and without --all.
var ErrPurgeTargetMissing = errors.New(purgeArgumentsMessageConstant)

func (builder *CommandBuilder) buildPurgeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     purgeUseConstant,
		Short:   purgeShortDescriptionConstant,
		Long:    purgeLongDescriptionConstant,
		GroupID: repositoryCommandGroupIdentifier,
		RunE:    builder.runPurge,
	}

	command.Flags().Bool(purgeAllFlagName, false, purgeAllFlagUsage)

	return command
}

func (builder *CommandBuilder) runPurge(command *cobra.Command, arguments []string) error {
	purgeAll, _ := command.Flags().GetBool(purgeAllFlagName)
	if purgeAll == (len(arguments) > 0) {
		return ErrPurgeTargetMissing
	}

	prefixes := []string{""}
	if !purgeAll {
		prefixes = prefixes[:0]
		for _, argument := range arguments {
			name, nameError := parseName(repositoryArgumentLabelConstant, argument)
			if nameError != nil {
				return nameError
			}
			prefixes = append(prefixes, naming.DisplayName(name))
		}
	}

	toolkit, toolkitError := builder.toolkit(command, arguments)
	if toolkitError != nil {
		return toolkitError
	}

	for _, prefix := range prefixes {
		archives, findError := toolkit.Locator.FindBackups(prefix)
		if findError != nil {
			return findError
		}
		for _, archiveName := range archives {
			toolkit.Service.RemoveBackup(command.Context(), archiveName)
		}
	}
	return nil
}
