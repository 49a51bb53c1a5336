package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(testInstance *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "DefaultFirstChoice",
			defaultChoice:  "console",
			choices:        []string{"console", "structured"},
			description:    "Override the configured log format.",
			expectedOutput: "`<CONSOLE|structured>` Override the configured log format.",
		},
		{
			name:           "DefaultInsideList",
			defaultChoice:  "info",
			choices:        []string{"debug", "info", "warn", "error"},
			description:    "Override the configured log level.",
			expectedOutput: "`<debug|INFO|warn|error>` Override the configured log level.",
		},
		{
			name:           "EmptyDescription",
			defaultChoice:  "debug",
			choices:        []string{"debug", "info"},
			expectedOutput: "`<DEBUG|info>`",
		},
		{
			name:           "DuplicatesAndBlanksIgnored",
			defaultChoice:  "Warn",
			choices:        []string{" warn ", "WARN", "", "error"},
			description:    "Pick a level.",
			expectedOutput: "`<WARN|error>` Pick a level.",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedOutput, FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description))
		})
	}
}
