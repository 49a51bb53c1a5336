package tests

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("GIT_TERMINAL_PROMPT", "0")
	_ = os.Unsetenv("GITSH_REPOSITORIES_DIRECTORY")
	_ = os.Unsetenv("GITSH_DEPLOY_ROOT")
	os.Exit(m.Run())
}
