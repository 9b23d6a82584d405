package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "coursekit",
	Short: "Build and serve course documentation sites",
	Long: `Coursekit turns a YAML course catalog (modules, lessons, topics) and
markdown lesson bodies into a static documentation site with sidebar
navigation, active-lesson highlighting, and search. It can also serve
the course locally with live reload while you write.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "coursekit.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
