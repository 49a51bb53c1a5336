package deploy

import "fmt"

const filesystemErrorTemplateConstant = "%s %s: %v"

// FilesystemError reports a failed filesystem step of a deploy.
type FilesystemError struct {
	Operation string
	Path      string
	Cause     error
}

// Error describes the failure.
func (filesystemError FilesystemError) Error() string {
	return fmt.Sprintf(filesystemErrorTemplateConstant, filesystemError.Operation, filesystemError.Path, filesystemError.Cause)
}

// Unwrap exposes the underlying error.
func (filesystemError FilesystemError) Unwrap() error {
	return filesystemError.Cause
}
