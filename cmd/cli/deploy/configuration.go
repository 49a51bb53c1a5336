package deploy

const (
	configurationRootKeyConstant      = "root"
	configurationSourceKeyConstant    = "source"
	configurationManifestKeyConstant  = "manifest"
	configurationKeySeparatorConstant = "."
	defaultRootConstant               = "~"
	defaultSourceConstant             = "shell"
)

// Configuration describes the deploy command settings.
type Configuration struct {
	Root     string `mapstructure:"root"`
	Source   string `mapstructure:"source"`
	Manifest string `mapstructure:"manifest"`
}

// DefaultConfiguration returns the deploy defaults: install into the home directory from ./shell using the built-in tree.
func DefaultConfiguration() Configuration {
	return Configuration{
		Root:     defaultRootConstant,
		Source:   defaultSourceConstant,
		Manifest: "",
	}
}

// DefaultConfigurationValues exposes default configuration keys below prefix for Viper.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		prefix + configurationKeySeparatorConstant + configurationRootKeyConstant:     defaults.Root,
		prefix + configurationKeySeparatorConstant + configurationSourceKeyConstant:   defaults.Source,
		prefix + configurationKeySeparatorConstant + configurationManifestKeyConstant: defaults.Manifest,
	}
}
