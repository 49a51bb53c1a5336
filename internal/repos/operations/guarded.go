package operations

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/gitsh/internal/repos/policy"
)

// UnknownValue replaces metadata that cannot be read.
const UnknownValue = "<UNKNOWN>"

// GuardedService exposes Service operations with failure policies applied.
// Mutating operations terminate the process on failure; metadata reads fall back to UnknownValue.
type GuardedService struct {
	service    *Service
	exitPolicy *policy.ExitPolicy
	logger     *zap.Logger
}

// NewGuardedService wraps service with exitPolicy.
func NewGuardedService(service *Service, exitPolicy *policy.ExitPolicy, logger *zap.Logger) *GuardedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exitPolicy == nil {
		exitPolicy = policy.NewExitPolicy(logger, nil)
	}
	return &GuardedService{service: service, exitPolicy: exitPolicy, logger: logger}
}

// Create initializes a bare repository or terminates.
func (guarded *GuardedService) Create(executionContext context.Context, name string) {
	guarded.exitPolicy.ExitOnError(policy.OperationCreate, func() error {
		return guarded.service.Create(executionContext, name)
	})()
}

// CreateFromRemote clones sourceURI as a bare repository or terminates.
func (guarded *GuardedService) CreateFromRemote(executionContext context.Context, name string, sourceURI string) {
	guarded.exitPolicy.ExitOnError(policy.OperationCreateFromRemote, func() error {
		return guarded.service.CreateFromRemote(executionContext, name, sourceURI)
	})()
}

// Remove deletes a repository directory or terminates.
func (guarded *GuardedService) Remove(executionContext context.Context, name string) {
	guarded.exitPolicy.ExitOnError(policy.OperationRemove, func() error {
		return guarded.service.Remove(executionContext, name)
	})()
}

// Rename moves a repository directory or terminates.
func (guarded *GuardedService) Rename(executionContext context.Context, name string, newName string) {
	guarded.exitPolicy.ExitOnError(policy.OperationRename, func() error {
		return guarded.service.Rename(executionContext, name, newName)
	})()
}

// Backup archives a repository directory or terminates, returning the archive name.
func (guarded *GuardedService) Backup(executionContext context.Context, name string) string {
	var archiveName string
	guarded.exitPolicy.ExitOnError(policy.OperationBackup, func() error {
		var backupError error
		archiveName, backupError = guarded.service.Backup(executionContext, name)
		return backupError
	})()
	return archiveName
}

// Restore extracts a backup archive or terminates.
func (guarded *GuardedService) Restore(executionContext context.Context, archiveName string) {
	guarded.exitPolicy.ExitOnError(policy.OperationRestore, func() error {
		return guarded.service.Restore(executionContext, archiveName)
	})()
}

// RemoveBackup deletes a backup archive or terminates.
func (guarded *GuardedService) RemoveBackup(executionContext context.Context, archiveName string) {
	guarded.exitPolicy.ExitOnError(policy.OperationRemoveBackup, func() error {
		return guarded.service.RemoveBackup(executionContext, archiveName)
	})()
}

// SetDescription stores the repository description or terminates.
func (guarded *GuardedService) SetDescription(executionContext context.Context, name string, text string) {
	guarded.exitPolicy.ExitOnError(policy.OperationSetDescription, func() error {
		return guarded.service.SetDescription(executionContext, name, text)
	})()
}

// Description returns the repository description or UnknownValue.
func (guarded *GuardedService) Description(executionContext context.Context, name string) string {
	return policy.DefaultOnError(guarded.logger, policy.OperationDescription, UnknownValue, func() (string, error) {
		return guarded.service.Description(executionContext, name)
	})()
}

// SetOwner stores the repository owner or terminates.
func (guarded *GuardedService) SetOwner(executionContext context.Context, name string, text string) {
	guarded.exitPolicy.ExitOnError(policy.OperationSetOwner, func() error {
		return guarded.service.SetOwner(executionContext, name, text)
	})()
}

// Owner returns the repository owner or UnknownValue.
func (guarded *GuardedService) Owner(executionContext context.Context, name string) string {
	return policy.DefaultOnError(guarded.logger, policy.OperationOwner, UnknownValue, func() (string, error) {
		return guarded.service.Owner(executionContext, name)
	})()
}

// SetPrivate updates the export marker or terminates.
func (guarded *GuardedService) SetPrivate(executionContext context.Context, name string, state bool) {
	guarded.exitPolicy.ExitOnError(policy.OperationSetPrivate, func() error {
		return guarded.service.SetPrivate(executionContext, name, state)
	})()
}

// Private reports whether the export marker exists. It has no failure path.
func (guarded *GuardedService) Private(filename string) bool {
	return guarded.service.Private(filename)
}
