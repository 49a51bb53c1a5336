// Package cli constructs the gitsh command-line interface, wiring the Cobra
// command hierarchy, the Viper-backed configuration loader and the zap
// logger shared by the repository and deploy commands.
package cli
