// Package policy turns operation failures into either process termination or
// fallback values.
//
// ExitOnError logs a fatal diagnostic and terminates the process with a code
// taken from a static per-operation table. DefaultOnError logs at debug level
// and substitutes a caller-provided value.
package policy

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	cannotContinueMessageConstant = "cannot continue"
	exitMessageConstant           = "exit"
	fallbackMessageConstant       = "using fallback value"
	logFieldOperationConstant     = "operation"
	logFieldErrorTypeConstant     = "error_type"
	logFieldExitCodeConstant      = "exit_code"
	logFieldExitCodeHexConstant   = "exit_code_hex"
	logFieldFallbackConstant      = "fallback"
	exitCodeHexTemplateConstant   = "%#x"
	errorTypeTemplateConstant     = "%T"
	formatPackagePathConstant     = "fmt"
	errorsPackagePathConstant     = "errors"
)

// Terminator ends the process with the supplied status.
type Terminator func(exitCode int)

// ExitPolicy terminates the process when a guarded action fails.
type ExitPolicy struct {
	logger     *zap.Logger
	terminator Terminator
}

// NewExitPolicy constructs an ExitPolicy. A nil terminator defaults to os.Exit.
func NewExitPolicy(logger *zap.Logger, terminator Terminator) *ExitPolicy {
	if logger == nil {
		logger = zap.NewNop()
	}
	if terminator == nil {
		terminator = os.Exit
	}
	return &ExitPolicy{logger: logger, terminator: terminator}
}

// ExitOnError wraps action so that a failure terminates the process with the operation's exit code.
func (policy *ExitPolicy) ExitOnError(operation OperationName, action func() error) func() {
	return policy.ExitOnErrorWithCode(operation, ExitCode(operation), action)
}

// ExitOnErrorWithCode wraps action so that a failure terminates the process with exitCode.
func (policy *ExitPolicy) ExitOnErrorWithCode(operation OperationName, exitCode int, action func() error) func() {
	return func() {
		actionError := action()
		if actionError == nil {
			return
		}

		terminatingLogger := policy.logger.WithOptions(zap.WithFatalHook(terminationHook{
			logger:     policy.logger,
			terminator: policy.terminator,
			exitCode:   exitCode,
		}))
		terminatingLogger.Fatal(
			cannotContinueMessageConstant,
			zap.String(logFieldOperationConstant, string(operation)),
			zap.String(logFieldErrorTypeConstant, ErrorType(actionError)),
			zap.Error(actionError),
		)
	}
}

// DefaultOnError wraps action so that a failure yields fallback instead of an error.
func DefaultOnError[Value any](logger *zap.Logger, operation OperationName, fallback Value, action func() (Value, error)) func() Value {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func() Value {
		value, actionError := action()
		if actionError != nil {
			logger.Debug(
				fallbackMessageConstant,
				zap.String(logFieldOperationConstant, string(operation)),
				zap.Any(logFieldFallbackConstant, fallback),
				zap.Error(actionError),
			)
			return fallback
		}
		return value
	}
}

// ErrorType names the first error in the chain that is not a plain fmt or errors wrapper,
// falling back to the innermost error.
func ErrorType(err error) string {
	if err == nil {
		return ""
	}
	innermost := err
	for current := err; current != nil; current = errors.Unwrap(current) {
		innermost = current
		if !isGenericError(current) {
			return fmt.Sprintf(errorTypeTemplateConstant, current)
		}
	}
	return fmt.Sprintf(errorTypeTemplateConstant, innermost)
}

func isGenericError(err error) bool {
	errorType := reflect.TypeOf(err)
	if errorType.Kind() == reflect.Pointer {
		errorType = errorType.Elem()
	}
	switch errorType.PkgPath() {
	case formatPackagePathConstant, errorsPackagePathConstant:
		return true
	default:
		return false
	}
}

// terminationHook runs after the fatal entry is written.
type terminationHook struct {
	logger     *zap.Logger
	terminator Terminator
	exitCode   int
}

// OnWrite implements zapcore.CheckWriteHook.
func (hook terminationHook) OnWrite(_ *zapcore.CheckedEntry, _ []zapcore.Field) {
	hook.logger.Info(
		exitMessageConstant,
		zap.Int(logFieldExitCodeConstant, hook.exitCode),
		zap.String(logFieldExitCodeHexConstant, fmt.Sprintf(exitCodeHexTemplateConstant, hook.exitCode)),
	)
	_ = hook.logger.Sync()
	hook.terminator(hook.exitCode)
}
