package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OverwriteFiles controls whether existing output files should be overwritten
	OverwriteFiles bool
	// DefaultStyle is the citation style used when none is given on the command line
	DefaultStyle string
	// Numbered controls whether text output prefixes each citation with its position
	Numbered bool
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)
	viper.SetDefault("style", "gost")
	viper.SetDefault("output.numbered", true)
	viper.SetDefault("datasette.enabled", false)
	viper.SetDefault("datasette.mode", "local")
	viper.SetDefault("datasette.dbfile", "./biblio.db")

	// Get values from viper
	OverwriteFiles = viper.GetBool("OverwriteFiles")
	DefaultStyle = viper.GetString("style")
	Numbered = viper.GetBool("output.numbered")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}
