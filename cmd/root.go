package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/areacalc/internal/config"
	"github.com/zjrosen/areacalc/internal/log"
	"github.com/zjrosen/areacalc/internal/session"
	"github.com/zjrosen/areacalc/internal/shape"
	"github.com/zjrosen/areacalc/internal/ui/styles"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "areacalc",
	Short: "An interactive area calculator for common geometric shapes",
	Long: `An interactive area calculator.

Pick a shape from the menu, enter its measurements and areacalc prints the area.
Invalid answers are re-asked until they are valid. Answer "no" when asked to
calculate another area, or close the input, to quit.`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCalculator,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/areacalc/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (see log_path)")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("log_path", defaults.LogPath)
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("ui.color", defaults.UI.Color)
	viper.SetDefault("ui.precision", defaults.UI.Precision)

	viper.SetEnvPrefix("AREACALC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("log_path", "AREACALC_LOG", "AREACALC_LOG_PATH")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .areacalc/config.yaml (current directory)
		// 2. ~/.config/areacalc/config.yaml (user config)
		if _, err := os.Stat(".areacalc/config.yaml"); err == nil {
			viper.SetConfigFile(".areacalc/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "areacalc"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, everything has a default.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}

	cfg = config.Config{}
	if err := viper.Unmarshal(&cfg); err != nil && configErr == nil {
		configErr = fmt.Errorf("decoding config: %w", err)
	}
}

// setup validates the loaded config and starts debug logging when enabled.
// The returned cleanup closes the log file.
func setup() (func(), error) {
	if configErr != nil {
		return nil, configErr
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if !cfg.Debug {
		return func() {}, nil
	}

	cleanup, err := log.InitWithTeaLog(cfg.LogPath, "areacalc")
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	level, _ := log.ParseLevel(cfg.LogLevel) // checked by Validate
	log.SetMinLevel(level)

	logStartup(viper.ConfigFileUsed(), level)
	return cleanup, nil
}

func logStartup(configFile string, level log.Level) {
	log.Info(log.CatConfig, "areacalc starting", "version", version,
		"config", configFile, "logPath", cfg.LogPath, "logLevel", level)
	if configFile == "" {
		log.Warn(log.CatConfig, "no config file found, using defaults")
	}
}

func runCalculator(cmd *cobra.Command, _ []string) error {
	cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	s := session.New(shape.Default(), cmd.InOrStdin(), cmd.OutOrStdout(),
		session.WithTheme(styles.ForConfig(cfg.UI.Color)),
		session.WithPrecision(cfg.UI.Precision),
	)
	if err := s.Run(); err != nil {
		return fmt.Errorf("running calculator: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
