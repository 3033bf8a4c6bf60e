package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Traversal
	showHidden bool
	dirsOnly   bool
	maxLevel   int

	// Decoration
	showSizes   bool
	useColor    bool
	countTokens bool
	tokenModel  string

	// Report destinations
	noReport    bool
	outputFile  string
	toClipboard bool
	pdfFile     string

	verbose bool
)

// version is set via ldflags at release time.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "arbor [PATH]",
	Short: "arbor renders a directory as a tree diagram.",
	Long: `Arbor lists directory contents in a tree-like format, one entry per
line with branch glyphs connecting parents to children. Hidden entries
are omitted unless requested, and the report closes with a count of the
directories and files shown.

PATH defaults to the current directory. A Git clone URL works too: the
repository's default branch is fetched into a temporary directory,
rendered, and cleaned up.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(args); err != nil {
			fmt.Fprintf(os.Stderr, "arbor: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig, configureLogging)

	// Traversal
	rootCmd.Flags().BoolVarP(&showHidden, "all", "a", false, "Show hidden files and directories")
	viper.BindPFlag("all", rootCmd.Flags().Lookup("all"))
	rootCmd.Flags().BoolVarP(&dirsOnly, "dirs-only", "d", false, "List directories only")
	viper.BindPFlag("dirs_only", rootCmd.Flags().Lookup("dirs-only"))
	rootCmd.Flags().IntVarP(&maxLevel, "level", "L", 0, "Maximum display depth (0 for no limit)")
	viper.BindPFlag("level", rootCmd.Flags().Lookup("level"))

	// Decoration
	rootCmd.Flags().BoolVarP(&showSizes, "size", "s", false, "Append human-readable file sizes")
	viper.BindPFlag("size", rootCmd.Flags().Lookup("size"))
	rootCmd.Flags().BoolVarP(&useColor, "color", "C", false, "Colorize directory and symlink names")
	viper.BindPFlag("color", rootCmd.Flags().Lookup("color"))
	rootCmd.Flags().BoolVar(&countTokens, "tokens", false, "Append per-file token counts")
	viper.BindPFlag("tokens", rootCmd.Flags().Lookup("tokens"))
	rootCmd.Flags().StringVar(&tokenModel, "token-model", "", "Model whose encoding counts tokens (e.g. gpt-4o)")
	viper.BindPFlag("token_model", rootCmd.Flags().Lookup("token-model"))

	// Report destinations
	rootCmd.Flags().BoolVar(&noReport, "noreport", false, "Omit the summary line")
	viper.BindPFlag("noreport", rootCmd.Flags().Lookup("noreport"))
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	rootCmd.Flags().BoolVarP(&toClipboard, "clipboard", "c", false, "Copy the report to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().StringVar(&pdfFile, "pdf", "", "Additionally export the report as a PDF")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug-level traversal logging")
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}

// initConfig layers in the config file and ARBOR_* environment variables.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "arbor"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("ARBOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}

	// BindPFlag feeds flag values into viper; values coming from the
	// config file or environment have to be pulled back out for every
	// flag the user did not set on the command line.
	f := rootCmd.Flags()
	if !f.Changed("all") {
		showHidden = viper.GetBool("all")
	}
	if !f.Changed("dirs-only") {
		dirsOnly = viper.GetBool("dirs_only")
	}
	if !f.Changed("level") {
		maxLevel = viper.GetInt("level")
	}
	if !f.Changed("size") {
		showSizes = viper.GetBool("size")
	}
	if !f.Changed("color") {
		useColor = viper.GetBool("color")
	}
	if !f.Changed("tokens") {
		countTokens = viper.GetBool("tokens")
	}
	if !f.Changed("token-model") {
		tokenModel = viper.GetString("token_model")
	}
	if !f.Changed("noreport") {
		noReport = viper.GetBool("noreport")
	}
	if !f.Changed("output") {
		outputFile = viper.GetString("output")
	}
	if !f.Changed("clipboard") {
		toClipboard = viper.GetBool("clipboard")
	}
	if !f.Changed("pdf") {
		pdfFile = viper.GetString("pdf")
	}
	if !f.Changed("verbose") {
		verbose = viper.GetBool("verbose")
	}
}

// configureLogging keeps diagnostics on stderr so the report stream stays
// clean for piping.
func configureLogging() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

func run(args []string) error {
	if maxLevel < 0 {
		return fmt.Errorf("invalid level %d, must not be negative", maxLevel)
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	var tempDirs []string
	defer func() {
		for _, dir := range tempDirs {
			log.Debugf("removing temporary clone %s", dir)
			_ = os.RemoveAll(dir)
		}
	}()

	target := root
	if isGitURL(root) {
		tempDir, err := cloneRepo(root)
		if err != nil {
			return err
		}
		tempDirs = append(tempDirs, tempDir)
		target = tempDir
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	opts := Options{
		ShowHidden: showHidden,
		DirsOnly:   dirsOnly,
		MaxLevel:   maxLevel,
		ShowSizes:  showSizes,
		Color:      useColor,
	}
	if pdfFile != "" && opts.Color {
		log.Warn("color codes cannot be typeset into a PDF, disabling color")
		opts.Color = false
	}
	if countTokens {
		counter, err := newTokenCounter(tokenModel)
		if err != nil {
			log.Warnf("token counting disabled: %v", err)
		} else {
			defer counter.Close()
			opts.Counter = counter
		}
	}

	var report strings.Builder
	var stats Stats
	if err := walk(&report, target, nil, opts, &stats); err != nil {
		return fmt.Errorf("cannot read directory %s: %w", root, err)
	}
	if !noReport {
		report.WriteString(summaryLine(stats, opts))
		report.WriteByte('\n')
	}
	text := report.String()

	if pdfFile != "" {
		if err := writePDF(text, pdfFile); err != nil {
			return err
		}
		log.Debugf("wrote %s", pdfFile)
	}

	switch {
	case outputFile != "":
		if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
			return fmt.Errorf("write %s: %w", outputFile, err)
		}
	case toClipboard:
		if err := clipboard.WriteAll(text); err != nil {
			log.Warnf("clipboard unavailable, printing instead: %v", err)
			fmt.Print(text)
		}
	default:
		fmt.Print(text)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
