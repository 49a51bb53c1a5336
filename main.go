package main

import (
	"fmt"
	"io"
	"os"

	"github.com/temirov/gitsh/cmd/cli"
)

const (
	successExitCodeConstant   = 0
	failureExitCodeConstant   = 1
	errorLineTemplateConstant = "gitsh: %v\n"
)

func main() {
	os.Exit(run(os.Stderr))
}

// run executes the command tree and maps a returned error to exit status 1.
// Operation failures terminate earlier with their own status through the exit policy.
func run(errorOutput io.Writer) int {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(errorOutput, errorLineTemplateConstant, executionError)
		return failureExitCodeConstant
	}
	return successExitCodeConstant
}
