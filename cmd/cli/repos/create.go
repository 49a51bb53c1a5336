package repos

import (
	"github.com/spf13/cobra"
)

const (
	createUseConstant              = "create <name> [source-uri]"
	createShortDescriptionConstant = "Create a bare repository"
	createLongDescriptionConstant  = "create initializes an empty bare repository named <name>.git, or clones [source-uri] into it when a source is given."
	createDescriptionFlagName      = "description"
	createDescriptionFlagUsage     = "Description recorded for the new repository"
	createOwnerFlagName            = "owner"
	createOwnerFlagUsage           = "Owner recorded for the new repository"
)

func (builder *CommandBuilder) buildCreateCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     createUseConstant,
		Short:   createShortDescriptionConstant,
		Long:    createLongDescriptionConstant,
		Args:    cobra.RangeArgs(1, 2),
		GroupID: repositoryCommandGroupIdentifier,
		RunE:    builder.runCreate,
	}

	command.Flags().String(createDescriptionFlagName, "", createDescriptionFlagUsage)
	command.Flags().String(createOwnerFlagName, "", createOwnerFlagUsage)

	return command
}

func (builder *CommandBuilder) runCreate(command *cobra.Command, arguments []string) error {
	name, nameError := parseName(repositoryArgumentLabelConstant, arguments[0])
	if nameError != nil {
		return nameError
	}

	sourceURI := ""
	if len(arguments) > 1 {
		parsedURI, uriError := parseArgument(sourceURIArgumentLabelConstant, arguments[1])
		if uriError != nil {
			return uriError
		}
		sourceURI = parsedURI
	}

	toolkit, toolkitError := builder.toolkit(command, arguments)
	if toolkitError != nil {
		return toolkitError
	}
	if existsError := requireAbsentRepository(toolkit, name); existsError != nil {
		return existsError
	}

	executionContext := command.Context()
	if len(sourceURI) > 0 {
		toolkit.Service.CreateFromRemote(executionContext, name, sourceURI)
	} else {
		toolkit.Service.Create(executionContext, name)
	}

	if command.Flags().Changed(createDescriptionFlagName) {
		description, _ := command.Flags().GetString(createDescriptionFlagName)
		toolkit.Service.SetDescription(executionContext, name, description)
	}
	if command.Flags().Changed(createOwnerFlagName) {
		owner, _ := command.Flags().GetString(createOwnerFlagName)
		toolkit.Service.SetOwner(executionContext, name, owner)
	}

	return nil
}
