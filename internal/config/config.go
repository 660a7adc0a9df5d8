package config

import (
	"flag"
	"os"

	"github.com/mattn/go-isatty"
)

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir string

	// Pattern settings
	Patterns  string
	RulesFile string

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	// Filtering settings
	RespectGitignore bool
	ExcludeHidden    bool

	// Output settings
	OutputFile    string
	JSONOutput    bool
	AbsolutePaths bool

	// Version info
	ShowVersion bool
	Version     string
}

// New creates a new Config with values from command-line flags
func New() *Config {
	c := &Config{
		Version: "1.0.0", // Update this when releasing new versions
	}

	// Parse command-line flags
	flag.StringVar(&c.RootDir, "dir", ".", "The root directory to resolve patterns against")
	flag.StringVar(&c.Patterns, "pattern", "", "Wildcard patterns (comma-separated, e.g. '**/*.go,!*_test.go')")
	flag.StringVar(&c.RulesFile, "rules", "", "Load patterns from a file (plain text or YAML)")
	flag.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	flag.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	flag.StringVar(&c.LogLevel, "log-level", "INFO", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	flag.BoolVar(&c.RespectGitignore, "gitignore", false, "Drop matches suppressed by .gitignore rules")
	flag.BoolVar(&c.ExcludeHidden, "hidden", false, "Drop hidden files/directories (starting with '.') from matches")
	flag.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flag.StringVar(&c.OutputFile, "output", "", "Output to file instead of stdout")
	flag.BoolVar(&c.JSONOutput, "json", false, "Output matches as a JSON array")
	flag.BoolVar(&c.AbsolutePaths, "abs", false, "Print absolute paths instead of paths relative to -dir")
	flag.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	flag.Parse()

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""

	return c
}
