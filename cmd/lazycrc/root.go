package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lazycrc/lazycrc/pkg/lazycrc/config"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/logging"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/types"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "lazycrc <file|directory>",
		Short: "Compute and verify CRC32 checksum manifests (SFV)",
		Long: `lazycrc computes CRC32 checksums for a file or a directory tree and
writes an SFV manifest, or re-verifies a tree against a previously
written manifest and reports missing, unreadable, or modified files.

Examples:
  lazycrc movie.mkv            # Checksum one file, write movie.mkv.sfv
  lazycrc ~/releases/pack      # Checksum a tree, write pack.sfv inside it
  lazycrc -c pack/pack.sfv     # Verify the tree against the manifest
  lazycrc -o json pack         # Machine-readable run summary`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/lazycrc/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verify", "c", false, "verify an existing SFV manifest instead of building one")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (plain, tsv, json, yaml)")
	rootCmd.PersistentFlags().IntP("workers", "w", 0, "override traversal worker count (0=auto)")
	rootCmd.PersistentFlags().String("chunk-size", "", "checksum read chunk size (e.g. 4K, 64K)")
	rootCmd.PersistentFlags().String("manifest-name", "", "override the generated manifest file name")
	rootCmd.PersistentFlags().StringSliceP("exclude", "e", nil, "exclude patterns (can be specified multiple times)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("verify", rootCmd.PersistentFlags().Lookup("verify"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	_ = viper.BindPFlag("chunk_size", rootCmd.PersistentFlags().Lookup("chunk-size"))
	_ = viper.BindPFlag("manifest_name", rootCmd.PersistentFlags().Lookup("manifest-name"))
	_ = viper.BindPFlag("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// Add config paths in order of precedence
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "lazycrc"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "lazycrc"))
		}
	}

	viper.SetEnvPrefix("LAZYCRC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// bootstrap initializes logging from the resolved configuration.
func bootstrap(_ *cobra.Command, _ []string) error {
	level := viper.GetString("logging.level")
	consoleLevel := ""
	if getVerbose() {
		level = "debug"
		consoleLevel = "debug"
	}

	cfg := logging.Config{
		Level:        level,
		Path:         viper.GetString("logging.path"),
		ConsoleLevel: consoleLevel,
		Components:   viper.GetStringMapString("logging.components"),
		Rotation:     rotationConfig(),
	}
	if err := logging.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

// rotationConfig resolves log rotation settings, falling back to defaults
// on unparsable values.
func rotationConfig() logging.RotationConfig {
	cfg := logging.DefaultRotationConfig()

	if maxSize, err := types.ParseSize(viper.GetString("logging.rotation.max_size")); err == nil && maxSize > 0 {
		cfg.MaxSize = maxSize
	}
	if backups := viper.GetInt("logging.rotation.max_backups"); backups > 0 {
		cfg.MaxBackups = backups
	}
	return cfg
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		_ = logging.Close()
	}()
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
