package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/darksv/go-chromaprint/configs"
	"github.com/darksv/go-chromaprint/internal/logging"
)

var (
	configFile   string
	verbose      bool
	logLevel     string
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "go-chromaprint",
	Short: "Audio fingerprinting and comparison",
	Long: `Compute compact acoustic fingerprints from audio files and locate
matching sections between recordings.

Fingerprints describe how the pitch-class content of the audio evolves
over time, so two encodings of the same material produce near-identical
fingerprints even across codecs and bitrates. The compressed form is
interchange-compatible across runs and machines.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, viper.GetViper()); err != nil {
			return err
		}
		configureLogging()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.config/go-chromaprint/go-chromaprint.yaml)")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, error)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text",
		"output format (text, json, yaml)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("output"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config", "go-chromaprint"))
		viper.AddConfigPath("/etc/go-chromaprint")
		viper.AddConfigPath("./configs")
		viper.SetConfigName("go-chromaprint")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CHROMAPRINT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configs.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
	}
}

// bindFlags binds each cobra flag to its associated viper configuration
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				lastErr = err
			}
		}

		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}

		if err := v.BindEnv(f.Name, "CHROMAPRINT_"+envVarSuffix); err != nil {
			lastErr = err
		}
	})

	return lastErr
}

func configureLogging() {
	if viper.GetBool("verbose") {
		logging.SetLevel(logging.DebugLevel)
		return
	}
	switch viper.GetString("log_level") {
	case "debug":
		logging.SetLevel(logging.DebugLevel)
	case "warn":
		logging.SetLevel(logging.WarnLevel)
	case "error":
		logging.SetLevel(logging.ErrorLevel)
	default:
		logging.SetLevel(logging.InfoLevel)
	}
}
