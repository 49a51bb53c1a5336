package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestAddToggleFlagParsesValues(testInstance *testing.T) {
	testCases := []struct {
		name             string
		arguments        []string
		expectedValue    bool
		expectedProvided bool
	}{
		{name: "NotProvided", arguments: []string{}},
		{name: "ExplicitYes", arguments: []string{"--private", "yes"}, expectedValue: true, expectedProvided: true},
		{name: "ExplicitTrueUppercase", arguments: []string{"--private=TRUE"}, expectedValue: true, expectedProvided: true},
		{name: "ExplicitNo", arguments: []string{"--private", "no"}, expectedValue: false, expectedProvided: true},
		{name: "ExplicitOff", arguments: []string{"--private", "off"}, expectedValue: false, expectedProvided: true},
		{name: "Shorthand", arguments: []string{"-p", "y"}, expectedValue: true, expectedProvided: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			command := &cobra.Command{}
			toggle := AddToggleFlag(command.Flags(), "private", "p", "Toggle flag")

			require.NoError(testInstance, command.ParseFlags(testCase.arguments))
			require.Equal(testInstance, testCase.expectedValue, toggle.Value)
			require.Equal(testInstance, testCase.expectedProvided, toggle.Provided)
		})
	}
}

func TestAddToggleFlagRejectsInvalidValues(testInstance *testing.T) {
	command := &cobra.Command{}
	toggle := AddToggleFlag(command.Flags(), "private", "", "Toggle flag")

	require.Error(testInstance, command.ParseFlags([]string{"--private", "maybe"}))
	require.False(testInstance, toggle.Provided)
}

func TestAddToggleFlagRequiresValue(testInstance *testing.T) {
	command := &cobra.Command{}
	AddToggleFlag(command.Flags(), "private", "", "Toggle flag")

	require.Error(testInstance, command.ParseFlags([]string{"--private"}))
}

func TestAddToggleFlagUsageShowsPlaceholder(testInstance *testing.T) {
	command := &cobra.Command{}
	AddToggleFlag(command.Flags(), "private", "", "Hide the repository")

	flag := command.Flags().Lookup("private")
	require.NotNil(testInstance, flag)
	require.Equal(testInstance, "`<yes|no>` Hide the repository", flag.Usage)
}
