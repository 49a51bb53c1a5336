// Package utils exposes reusable helpers consumed by multiple commands.
//
// It houses the ConfigurationLoader, which layers embedded defaults, an
// optional configuration file and GITSH_ environment variables through Viper,
// and the LoggerFactory, which builds the zap logger shared by every command.
package utils
