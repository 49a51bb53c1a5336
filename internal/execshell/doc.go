// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec behind the CommandRunner abstraction, exposes
// OSCommandRunner for default process execution, and offers ShellExecutor
// with Call and Output helpers used by gitsh to run git, rm, mv, touch, and
// tar synchronously in a testable manner.
package execshell
