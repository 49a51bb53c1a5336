package policy

// OperationName identifies a repository operation for diagnostics and exit codes.
type OperationName string

// Repository operations known to the exit code table.
const (
	OperationCreate           OperationName = "create"
	OperationCreateFromRemote OperationName = "create-from-remote"
	OperationRemove           OperationName = "remove"
	OperationRename           OperationName = "rename"
	OperationBackup           OperationName = "backup"
	OperationRestore          OperationName = "restore"
	OperationRemoveBackup     OperationName = "remove-backup"
	OperationSetDescription   OperationName = "set-description"
	OperationDescription      OperationName = "description"
	OperationSetOwner         OperationName = "set-owner"
	OperationOwner            OperationName = "owner"
	OperationSetPrivate       OperationName = "set-private"
	OperationDeploy           OperationName = "deploy"
)

// DeployExitCode is the status reported when installing the git-shell tree fails.
const DeployExitCode = 1

// UnknownOperationExitCode is used for operations missing from the exit code table.
const UnknownOperationExitCode = 254

var operationExitCodes = map[OperationName]int{
	OperationCreate:           128,
	OperationCreateFromRemote: 129,
	OperationRemove:           130,
	OperationRename:           131,
	OperationBackup:           132,
	OperationRestore:          133,
	OperationRemoveBackup:     134,
	OperationSetDescription:   135,
	OperationSetOwner:         136,
	OperationSetPrivate:       137,
}

// ExitCode returns the process status reported when operation fails.
func ExitCode(operation OperationName) int {
	if exitCode, known := operationExitCodes[operation]; known {
		return exitCode
	}
	return UnknownOperationExitCode
}
