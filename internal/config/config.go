package config

type Config struct {
	ConfigVersion int           `yaml:"configVersion"`
	Context       ContextConfig `yaml:"context"`
	Server        ServerConfig  `yaml:"server"`
	Metrics       MetricsConfig `yaml:"metrics"`
	Logging       LoggingConfig `yaml:"logging"`

	baseDir string `yaml:"-"`
}

// ContextConfig carries the archival context for one replayed page: the page
// making requests, the site it was captured from, and the prefix the replay
// host serves archive content under.
type ContextConfig struct {
	CurrentURL     string `yaml:"currentUrl"`
	OriginalHost   string `yaml:"originalHost"`
	OriginalScheme string `yaml:"originalScheme"`
	OriginalURL    string `yaml:"originalUrl"`
	ServingPrefix  string `yaml:"servingPrefix"`
}

type ServerConfig struct {
	Listen string `yaml:"listen"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

type LoggingConfig struct {
	DecisionLog string `yaml:"decisionLog"`
}

func (c *Config) BaseDir() string {
	return c.baseDir
}

func (c *Config) ResolvePath(path string) string {
	return c.resolvePath(path)
}
