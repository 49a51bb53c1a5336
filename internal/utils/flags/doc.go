// Package flags provides pflag helpers shared by gitsh commands.
package flags
