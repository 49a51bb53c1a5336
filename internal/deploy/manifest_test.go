package deploy_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/temirov/gitsh/internal/deploy"
)

func TestDefaultManifestMatchesInstallLayout(testInstance *testing.T) {
	manifest, manifestError := deploy.DefaultManifest()
	require.NoError(testInstance, manifestError)

	require.Equal(testInstance, []deploy.Entry{
		{Directory: "git-shell-commands", Files: []string{"alter", "backup", "create", "help", "list", "purge", "remove", "restore", "gitsh"}},
		{Directory: "git-template", Files: []string{}},
		{Directory: "git-template/hooks", Files: []string{"post-update"}},
	}, manifest.Tree)
}

func TestParseManifestValidation(testInstance *testing.T) {
	testCases := []struct {
		name        string
		content     string
		expectError bool
	}{
		{name: "valid", content: "tree:\n  - directory: bin\n    files: [tool]\n"},
		{name: "empty_tree", content: "tree: []\n", expectError: true},
		{name: "missing_directory", content: "tree:\n  - files: [tool]\n", expectError: true},
		{name: "escaping_directory", content: "tree:\n  - directory: ../outside\n", expectError: true},
		{name: "absolute_directory", content: "tree:\n  - directory: /etc\n", expectError: true},
		{name: "nested_file_name", content: "tree:\n  - directory: bin\n    files: [sub/tool]\n", expectError: true},
		{name: "malformed_yaml", content: "tree: [", expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			_, parseError := deploy.ParseManifest([]byte(testCase.content))
			if testCase.expectError {
				require.Error(testInstance, parseError)
				return
			}
			require.NoError(testInstance, parseError)
		})
	}
}

func TestLoadManifest(testInstance *testing.T) {
	fileSystem := afero.NewMemMapFs()
	require.NoError(testInstance, afero.WriteFile(fileSystem, "/etc/gitsh/manifest.yaml", []byte("tree:\n  - directory: bin\n    files: [tool]\n"), 0o644))

	manifest, loadError := deploy.LoadManifest(fileSystem, "/etc/gitsh/manifest.yaml")
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, []deploy.Entry{{Directory: "bin", Files: []string{"tool"}}}, manifest.Tree)

	_, missingError := deploy.LoadManifest(fileSystem, "/etc/gitsh/missing.yaml")
	require.Error(testInstance, missingError)
}
