package config

// DefaultAssetExcludes are glob patterns never copied into the built site.
var DefaultAssetExcludes = []string{
	".git/**",
	"node_modules/**",
	"*.tmp",
	"*.bak",
	".DS_Store",
}

// HighlightStyles are the chroma style names offered by the init wizard.
// Any valid chroma style name is accepted in the config file.
var HighlightStyles = []string{
	"github",
	"monokai",
	"dracula",
	"solarized-dark",
	"solarized-light",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:          "Course",
		ContentDir:     "content",
		OutputDir:      "site",
		Port:           8080,
		HighlightStyle: "github",
		LiveReload:     true,
		AssetInclude:   []string{"**"},
		AssetExclude:   DefaultAssetExcludes,
	}
}
