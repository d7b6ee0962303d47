package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/biblio/cmd/bibliography"
	"github.com/lepinkainen/biblio/internal/config"
)

var (
	runFormat  = bibliography.RunWithParams
	listStyles = func() error { return bibliography.ListStyles(os.Stdout) }
)

// CLI represents the complete command structure for the biblio application
type CLI struct {
	// Global flags
	Overwrite bool `help:"Overwrite existing output files"`
	Verbose   bool `short:"v" help:"Enable debug logging"`

	// Datasette flags
	Datasette   bool   `help:"Export citations to Datasette"`
	DatasetteDB string `help:"Path to SQLite database file (defaults to datasette.dbfile in config)"`

	Format FormatCmd `cmd:"" help:"Format a source file into an ordered reference list"`
	Styles StylesCmd `cmd:"" help:"List citation styles and the record kinds they render"`
}

// FormatCmd represents the format command
type FormatCmd struct {
	Input       string `short:"f" help:"Path to YAML or CSV source file"`
	Style       string `short:"s" help:"Citation style (apa or gost), overrides the source file and config"`
	Interactive bool   `short:"i" help:"Pick the citation style in an interactive list"`
	Output      string `short:"o" help:"Write the reference list to this file instead of stdout"`
	NoNumbered  bool   `help:"Do not prefix citations with their position"`
	Markdown    bool   `help:"Write the reference list as an Obsidian note"`
	MarkdownDir string `help:"Subdirectory under markdown output directory for the note"`
	Title       string `help:"Title of the markdown note" default:"References"`
	Heading     string `help:"Section heading above the list in the markdown note"`
	JSON        bool   `help:"Write citations to JSON format"`
	JSONOutput  string `help:"Path to JSON output file (defaults to json/<source name>.json)"`
}

// StylesCmd represents the styles command
type StylesCmd struct{}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(false)
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("biblio"),
		kong.Description("Render bibliographic records as an ordered reference list in APA or GOST style."),
		kong.UsageOnError(),
	)

	if cli.Verbose {
		initLogging(true)
	}

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	config.InitConfig()

	viper.SetEnvPrefix("BIBLIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.BindEnv("datasette.api_token", "BIBLIO_DATASETTE_TOKEN"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
			os.Exit(0)
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Re-read globals now that the config file is loaded
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetOverwriteFiles(cli.Overwrite || config.OverwriteFiles)

	// Flags only switch datasette on; the config file can enable it too
	if cli.Datasette {
		viper.Set("datasette.enabled", true)
	}
	if cli.DatasetteDB != "" {
		viper.Set("datasette.dbfile", cli.DatasetteDB)
	}
}

func (f *FormatCmd) Run() error {
	return runFormat(bibliography.Params{
		Input:       f.Input,
		Style:       f.Style,
		Interactive: f.Interactive,
		Output:      f.Output,
		Numbered:    !f.NoNumbered && config.Numbered,
		Markdown:    f.Markdown,
		MarkdownDir: f.MarkdownDir,
		Title:       f.Title,
		Heading:     f.Heading,
		WriteJSON:   f.JSON,
		JSONOutput:  f.JSONOutput,
		Overwrite:   config.OverwriteFiles,
	})
}

func (s *StylesCmd) Run() error {
	return listStyles()
}

// initLogging installs the humanlog handler on stderr; stdout carries the
// reference list. BIBLIO_LOG_LEVEL sets the level and --verbose forces debug.
func initLogging(verbose bool) {
	level := slog.LevelInfo
	if env := os.Getenv("BIBLIO_LOG_LEVEL"); env != "" {
		if err := level.UnmarshalText([]byte(env)); err != nil {
			level = slog.LevelInfo
		}
	}
	if verbose {
		level = slog.LevelDebug
	}

	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
