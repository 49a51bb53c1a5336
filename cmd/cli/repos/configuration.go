package repos

const (
	configurationDirectoryKeyConstant = "directory"
	configurationKeySeparatorConstant = "."
	defaultRepositoryDirectory        = ""
)

// Configuration describes where repository commands operate.
type Configuration struct {
	// Directory holds repository directories and backup archives. Empty selects the working directory.
	Directory string `mapstructure:"directory"`
}

// DefaultConfiguration returns baseline configuration values for repository commands.
func DefaultConfiguration() Configuration {
	return Configuration{Directory: defaultRepositoryDirectory}
}

// DefaultConfigurationValues exposes default configuration keys below prefix for Viper.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		prefix + configurationKeySeparatorConstant + configurationDirectoryKeyConstant: defaults.Directory,
	}
}
