package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bethropolis/file-resolver/internal/config"
	"github.com/bethropolis/file-resolver/internal/ignore"
	"github.com/bethropolis/file-resolver/internal/logger"
	"github.com/bethropolis/file-resolver/internal/printer"
	"github.com/bethropolis/file-resolver/internal/resolver"
	"github.com/bethropolis/file-resolver/internal/rules"
	"github.com/bethropolis/file-resolver/internal/summary"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	// Set up output destination
	var output io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		// Note: file will be closed by main function
		output = file
	}

	// Set up logger
	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)

	// Apply log level if specified (overrides verbose/quiet flags)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: output,
	}
}

// Run executes the main application logic
func (a *App) Run() {
	startTime := time.Now()

	// Show version and exit if requested
	if a.cfg.ShowVersion {
		fmt.Printf("file-resolver version %s\n", a.cfg.Version)
		os.Exit(0)
	}

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	// --- Directory validation ---
	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		a.log.Error("Invalid root directory path '%s': %v", a.cfg.RootDir, err)
		os.Exit(1)
	}

	dirInfo, err := os.Stat(absRootDir)
	if err != nil {
		if os.IsNotExist(err) {
			a.log.Error("Root directory '%s' not found.", absRootDir)
		} else {
			a.log.Error("Could not access root directory '%s': %v", absRootDir, err)
		}
		os.Exit(1)
	}
	if !dirInfo.IsDir() {
		a.log.Error("Specified path '%s' is not a directory.", absRootDir)
		os.Exit(1)
	}

	// --- Collect patterns ---
	patterns := a.collectPatterns(infoLog)
	if len(patterns) == 0 {
		a.log.Error("No patterns given. Use -pattern or -rules.")
		os.Exit(1)
	}

	if err := rules.Validate(patterns); err != nil {
		a.log.Error("Pattern validation failed: %v", err)
		os.Exit(1)
	}

	// --- Resolve ---
	infoLog("Resolving %d patterns against: %s", len(patterns), absRootDir)

	res := resolver.New(resolver.WithLogger(a.log))
	matches, err := res.Resolve(patterns, absRootDir)
	if err != nil {
		a.log.Error("Resolution failed: %v", err)
		os.Exit(1)
	}

	// --- Optional ignore post-filter ---
	if a.cfg.RespectGitignore || a.cfg.ExcludeHidden {
		matcher, err := ignore.New(absRootDir,
			ignore.WithLogger(a.log),
			ignore.WithRepoRules(a.cfg.RespectGitignore),
			ignore.WithHidden(a.cfg.ExcludeHidden),
		)
		if err != nil {
			a.log.Error("Error initializing ignore rules: %v", err)
			os.Exit(1)
		}

		before := len(matches)
		matches = matcher.Filter(matches)
		a.log.Debug("Ignore rules dropped %d of %d matches", before-len(matches), before)
	}

	// Sort for consistent output
	sort.Strings(matches)

	// --- Print matches ---
	p := printer.New()
	p.WithOutput(a.Output)
	p.WithColors(a.cfg.UseColors)
	if a.cfg.JSONOutput {
		a.log.Debug("JSON output mode enabled")
		p.WithJSON(true)
		// Disable colors in JSON mode regardless of other settings
		p.WithColors(false)
	}

	for _, match := range matches {
		out := match
		if !a.cfg.AbsolutePaths {
			if rel, relErr := filepath.Rel(absRootDir, match); relErr == nil {
				out = filepath.ToSlash(rel)
			}
		}
		p.PrintMatch(out)
	}
	p.Finalize()

	summary.DisplayResults(a.log, p.GetCount(), len(patterns), time.Since(startTime), a.cfg.Quiet)
}

// collectPatterns merges patterns from the rules file and the -pattern
// flag, in that order.
func (a *App) collectPatterns(infoLog func(string, ...interface{})) []string {
	var patterns []string

	if a.cfg.RulesFile != "" {
		loaded, err := rules.LoadFile(a.cfg.RulesFile)
		if err != nil {
			a.log.Error("Error loading rules file: %v", err)
			os.Exit(1)
		}
		patterns = append(patterns, loaded...)
		infoLog("Loaded %d patterns from %s.", len(loaded), a.cfg.RulesFile)
	}

	if a.cfg.Patterns != "" {
		for _, p := range strings.Split(a.cfg.Patterns, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				patterns = append(patterns, p)
			}
		}
	}

	return patterns
}
