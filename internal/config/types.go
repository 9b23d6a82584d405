package config

// Config is the top-level coursekit configuration, corresponding to
// coursekit.yml.
type Config struct {
	Title          string   `yaml:"title" koanf:"title"`
	ContentDir     string   `yaml:"content_dir" koanf:"content_dir"`
	OutputDir      string   `yaml:"output_dir" koanf:"output_dir"`
	Port           int      `yaml:"port" koanf:"port"`
	HighlightStyle string   `yaml:"highlight_style" koanf:"highlight_style"`
	LiveReload     bool     `yaml:"live_reload" koanf:"live_reload"`
	AssetInclude   []string `yaml:"asset_include" koanf:"asset_include"`
	AssetExclude   []string `yaml:"asset_exclude" koanf:"asset_exclude"`
}
