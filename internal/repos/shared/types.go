package shared

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/temirov/gitsh/internal/execshell"
)

const (
	argumentEmptyMessageConstant        = "argument must not be empty"
	argumentMultilineMessageConstant    = "argument must not span multiple lines"
	argumentOptionLikeMessageConstant   = "argument must not start with a dash"
	argumentOptionPrefixConstant        = "-"
	argumentLineBreakCharactersConstant = "\r\n"
	nameSeparatorMessageConstant        = "name must not contain a path separator"
	nameRelativeMessageConstant         = "name must not refer to the current or parent directory"
	nameSeparatorCharactersConstant     = "/\\"
	currentDirectoryNameConstant        = "."
	parentDirectoryNameConstant         = ".."
)

var (
	// ErrEmptyArgument indicates that a blank name was supplied.
	ErrEmptyArgument = errors.New(argumentEmptyMessageConstant)
	// ErrMultilineArgument indicates that a name contained a line break.
	ErrMultilineArgument = errors.New(argumentMultilineMessageConstant)
	// ErrOptionLikeArgument indicates that a name would be parsed as an option by external tools.
	ErrOptionLikeArgument = errors.New(argumentOptionLikeMessageConstant)
	// ErrPathLikeName indicates that a repository or archive name would resolve outside its directory.
	ErrPathLikeName = errors.New(nameSeparatorMessageConstant)
	// ErrRelativeName indicates that a name was "." or "..".
	ErrRelativeName = errors.New(nameRelativeMessageConstant)
)

// Clock abstracts time acquisition for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time source.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// CommandExecutor exposes the subset of shell execution used by repository services.
type CommandExecutor interface {
	Call(executionContext context.Context, name execshell.CommandName, arguments ...string) error
	Output(executionContext context.Context, name execshell.CommandName, arguments ...string) (string, error)
}

// Argument is a validated, whitespace-trimmed repository or archive name supplied by a user.
type Argument string

// NewArgument validates raw user input before it reaches an external command line.
func NewArgument(raw string) (Argument, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", ErrEmptyArgument
	}
	if strings.ContainsAny(trimmed, argumentLineBreakCharactersConstant) {
		return "", ErrMultilineArgument
	}
	if strings.HasPrefix(trimmed, argumentOptionPrefixConstant) {
		return "", ErrOptionLikeArgument
	}
	return Argument(trimmed), nil
}

// NewName validates a repository name, archive name or prefix. On top of NewArgument it
// requires a single path component so the name stays inside the repositories directory.
func NewName(raw string) (Argument, error) {
	argument, argumentError := NewArgument(raw)
	if argumentError != nil {
		return "", argumentError
	}
	if strings.ContainsAny(argument.String(), nameSeparatorCharactersConstant) {
		return "", ErrPathLikeName
	}
	switch argument.String() {
	case currentDirectoryNameConstant, parentDirectoryNameConstant:
		return "", ErrRelativeName
	}
	return argument, nil
}

// String returns the argument text.
func (argument Argument) String() string {
	return string(argument)
}
