package repos

import (
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/temirov/gitsh/internal/repos/naming"
	"github.com/temirov/gitsh/internal/repos/operations"
)

const (
	listUseConstant              = "list [prefix]"
	listShortDescriptionConstant = "List repositories or backup archives"
	listLongDescriptionConstant  = "list prints repositories whose names begin with [prefix] together with their description, owner and export marker. With --backups it prints backup archives instead."
	listBackupsFlagName          = "backups"
	listBackupsFlagUsage         = "List backup archives instead of repositories"
	listNameHeaderConstant       = "Name"
	listDescriptionHeader        = "Description"
	listOwnerHeaderConstant      = "Owner"
	listPrivateHeaderConstant    = "Private"
	listArchiveHeaderConstant    = "Archive"
	listRepositoryHeader         = "Repository"
	listCreatedHeaderConstant    = "Created"
	listCreatedLayoutConstant    = "2006-01-02 15:04:05 MST"
)

func (builder *CommandBuilder) buildListCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     listUseConstant,
		Short:   listShortDescriptionConstant,
		Long:    listLongDescriptionConstant,
		Args:    cobra.MaximumNArgs(1),
		GroupID: repositoryCommandGroupIdentifier,
		RunE:    builder.runList,
	}

	command.Flags().Bool(listBackupsFlagName, false, listBackupsFlagUsage)

	return command
}

func (builder *CommandBuilder) runList(command *cobra.Command, arguments []string) error {
	prefix := ""
	if len(arguments) > 0 {
		parsedPrefix, prefixError := parseName(prefixArgumentLabelConstant, arguments[0])
		if prefixError != nil {
			return prefixError
		}
		prefix = parsedPrefix
	}

	toolkit, toolkitError := builder.toolkit(command, arguments)
	if toolkitError != nil {
		return toolkitError
	}

	table := tablewriter.NewWriter(command.OutOrStdout())
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	listBackups, _ := command.Flags().GetBool(listBackupsFlagName)
	if listBackups {
		archives, findError := toolkit.Locator.FindBackups(prefix)
		if findError != nil {
			return findError
		}
		if len(archives) == 0 {
			return nil
		}
		sort.Strings(archives)

		table.SetHeader([]string{listArchiveHeaderConstant, listRepositoryHeader, listCreatedHeaderConstant})
		for _, archiveName := range archives {
			repositoryName, createdAt, recognized := naming.BackupRepositoryName(archiveName)
			if !recognized {
				table.Append([]string{archiveName, operations.UnknownValue, operations.UnknownValue})
				continue
			}
			table.Append([]string{archiveName, repositoryName, createdAt.UTC().Format(listCreatedLayoutConstant)})
		}
		table.Render()
		return nil
	}

	repositories, findError := toolkit.Locator.FindRepositories(prefix)
	if findError != nil {
		return findError
	}
	if len(repositories) == 0 {
		return nil
	}
	sort.Strings(repositories)

	table.SetHeader([]string{listNameHeaderConstant, listDescriptionHeader, listOwnerHeaderConstant, listPrivateHeaderConstant})
	for _, summary := range toolkit.Service.Summarize(command.Context(), repositories) {
		table.Append([]string{summary.Name, summary.Description, summary.Owner, formatBoolean(summary.Private)})
	}
	table.Render()
	return nil
}
