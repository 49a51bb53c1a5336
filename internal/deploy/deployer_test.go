package deploy_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/gitsh/internal/deploy"
)

const (
	testHomeDirectoryConstant   = "/home/git"
	testSourceDirectoryConstant = "/opt/gitsh/shell"
	testExecutablePermissions   = os.FileMode(0o755)
	testDirectoryPermissions    = os.FileMode(0o755)
)

var testManifest = deploy.Manifest{
	Tree: []deploy.Entry{
		{Directory: "git-shell-commands", Files: []string{"create", "list"}},
		{Directory: "git-template", Files: nil},
		{Directory: "git-template/hooks", Files: []string{"post-update"}},
	},
}

func newSourceFileSystem(testInstance *testing.T, files ...string) afero.Fs {
	testInstance.Helper()

	fileSystem := afero.NewMemMapFs()
	require.NoError(testInstance, fileSystem.MkdirAll(testSourceDirectoryConstant, testDirectoryPermissions))
	for _, file := range files {
		require.NoError(testInstance, afero.WriteFile(fileSystem, filepath.Join(testSourceDirectoryConstant, file), []byte("#!/bin/sh\n# "+file+"\n"), testExecutablePermissions))
	}
	return fileSystem
}

func TestDeployerInstallsTree(testInstance *testing.T) {
	fileSystem := newSourceFileSystem(testInstance, "create", "list", "post-update")
	require.NoError(testInstance, fileSystem.MkdirAll(testHomeDirectoryConstant, testDirectoryPermissions))

	observerCore, observerLogs := observer.New(zap.InfoLevel)
	deployer := deploy.NewDeployer(fileSystem, zap.New(observerCore))

	deployError := deployer.Deploy(deploy.Options{
		Root:            testHomeDirectoryConstant,
		SourceDirectory: testSourceDirectoryConstant,
		Manifest:        testManifest,
	})
	require.NoError(testInstance, deployError)

	for _, directory := range []string{"git-shell-commands", "git-template", "git-template/hooks"} {
		isDirectory, statError := afero.IsDir(fileSystem, filepath.Join(testHomeDirectoryConstant, directory))
		require.NoError(testInstance, statError)
		require.True(testInstance, isDirectory, directory)
	}

	for _, installed := range []string{"git-shell-commands/create", "git-shell-commands/list", "git-template/hooks/post-update"} {
		targetPath := filepath.Join(testHomeDirectoryConstant, installed)
		content, readError := afero.ReadFile(fileSystem, targetPath)
		require.NoError(testInstance, readError)
		require.Contains(testInstance, string(content), filepath.Base(installed))

		info, statError := fileSystem.Stat(targetPath)
		require.NoError(testInstance, statError)
		require.Equal(testInstance, testExecutablePermissions, info.Mode().Perm())
	}

	require.Equal(testInstance, 3, observerLogs.FilterMessage("directory").Len())
	require.Equal(testInstance, 3, observerLogs.FilterMessage("file").Len())
}

func TestDeployerIsIdempotent(testInstance *testing.T) {
	fileSystem := newSourceFileSystem(testInstance, "create", "list", "post-update")
	require.NoError(testInstance, fileSystem.MkdirAll(filepath.Join(testHomeDirectoryConstant, "git-shell-commands"), testDirectoryPermissions))

	deployer := deploy.NewDeployer(fileSystem, zap.NewNop())
	options := deploy.Options{Root: testHomeDirectoryConstant, SourceDirectory: testSourceDirectoryConstant, Manifest: testManifest}

	require.NoError(testInstance, deployer.Deploy(options))
	require.NoError(testInstance, deployer.Deploy(options))
}

func TestDeployerRejectsInvalidRoot(testInstance *testing.T) {
	testCases := []struct {
		name    string
		prepare func(fileSystem afero.Fs)
	}{
		{
			name:    "missing_root",
			prepare: func(afero.Fs) {},
		},
		{
			name: "root_is_file",
			prepare: func(fileSystem afero.Fs) {
				require.NoError(testInstance, fileSystem.MkdirAll("/home", testDirectoryPermissions))
				require.NoError(testInstance, afero.WriteFile(fileSystem, testHomeDirectoryConstant, []byte("not a directory"), 0o644))
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			fileSystem := newSourceFileSystem(testInstance, "create", "list", "post-update")
			testCase.prepare(fileSystem)

			deployError := deploy.NewDeployer(fileSystem, zap.NewNop()).Deploy(deploy.Options{
				Root:            testHomeDirectoryConstant,
				SourceDirectory: testSourceDirectoryConstant,
				Manifest:        testManifest,
			})
			require.ErrorIs(testInstance, deployError, deploy.ErrRootNotDirectory)

			var filesystemError deploy.FilesystemError
			require.True(testInstance, errors.As(deployError, &filesystemError))

			exists, existsError := afero.Exists(fileSystem, filepath.Join(testHomeDirectoryConstant, "git-shell-commands"))
			require.NoError(testInstance, existsError)
			require.False(testInstance, exists)
		})
	}
}

func TestDeployerStopsAtMissingSourceAndKeepsPartialCopies(testInstance *testing.T) {
	fileSystem := newSourceFileSystem(testInstance, "create")
	require.NoError(testInstance, fileSystem.MkdirAll(testHomeDirectoryConstant, testDirectoryPermissions))

	deployError := deploy.NewDeployer(fileSystem, zap.NewNop()).Deploy(deploy.Options{
		Root:            testHomeDirectoryConstant,
		SourceDirectory: testSourceDirectoryConstant,
		Manifest:        testManifest,
	})

	var filesystemError deploy.FilesystemError
	require.True(testInstance, errors.As(deployError, &filesystemError))
	require.Equal(testInstance, filepath.Join(testSourceDirectoryConstant, "list"), filesystemError.Path)

	copied, copiedError := afero.Exists(fileSystem, filepath.Join(testHomeDirectoryConstant, "git-shell-commands", "create"))
	require.NoError(testInstance, copiedError)
	require.True(testInstance, copied)

	templateCreated, templateError := afero.Exists(fileSystem, filepath.Join(testHomeDirectoryConstant, "git-template"))
	require.NoError(testInstance, templateError)
	require.False(testInstance, templateCreated)
}

func TestDeployerCopiesOverriddenSources(testInstance *testing.T) {
	const executablePath = "/usr/local/bin/gitsh"

	fileSystem := newSourceFileSystem(testInstance, "create", "post-update")
	require.NoError(testInstance, fileSystem.MkdirAll(testHomeDirectoryConstant, testDirectoryPermissions))
	require.NoError(testInstance, fileSystem.MkdirAll(filepath.Dir(executablePath), testDirectoryPermissions))
	require.NoError(testInstance, afero.WriteFile(fileSystem, executablePath, []byte("ELF binary"), testExecutablePermissions))

	observerCore, observerLogs := observer.New(zap.InfoLevel)
	deployError := deploy.NewDeployer(fileSystem, zap.New(observerCore)).Deploy(deploy.Options{
		Root:            testHomeDirectoryConstant,
		SourceDirectory: testSourceDirectoryConstant,
		SourceOverrides: map[string]string{"gitsh": executablePath},
		Manifest: deploy.Manifest{Tree: []deploy.Entry{
			{Directory: "git-shell-commands", Files: []string{"create", "gitsh"}},
			{Directory: "git-template/hooks", Files: []string{"post-update"}},
		}},
	})
	require.NoError(testInstance, deployError)

	content, readError := afero.ReadFile(fileSystem, filepath.Join(testHomeDirectoryConstant, "git-shell-commands", "gitsh"))
	require.NoError(testInstance, readError)
	require.Equal(testInstance, "ELF binary", string(content))

	sourceEntries := observerLogs.FilterMessage("file").FilterField(zap.String("source", executablePath)).All()
	require.Len(testInstance, sourceEntries, 1)
}

func TestDeployerSkipsFilesAlreadyInPlace(testInstance *testing.T) {
	fileSystem := newSourceFileSystem(testInstance)
	installedPath := filepath.Join(testHomeDirectoryConstant, "git-shell-commands", "gitsh")
	require.NoError(testInstance, fileSystem.MkdirAll(filepath.Dir(installedPath), testDirectoryPermissions))
	require.NoError(testInstance, afero.WriteFile(fileSystem, installedPath, []byte("ELF binary"), testExecutablePermissions))

	observerCore, observerLogs := observer.New(zap.InfoLevel)
	deployError := deploy.NewDeployer(fileSystem, zap.New(observerCore)).Deploy(deploy.Options{
		Root:            testHomeDirectoryConstant,
		SourceDirectory: testSourceDirectoryConstant,
		SourceOverrides: map[string]string{"gitsh": installedPath},
		Manifest:        deploy.Manifest{Tree: []deploy.Entry{{Directory: "git-shell-commands", Files: []string{"gitsh"}}}},
	})
	require.NoError(testInstance, deployError)

	content, readError := afero.ReadFile(fileSystem, installedPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, "ELF binary", string(content))
	require.Equal(testInstance, 1, observerLogs.FilterMessage("file already in place").Len())
}
