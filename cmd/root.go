package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/estudia/internal/config"
	"github.com/abhisek/estudia/internal/evaluation"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "estudia",
	Short:        "Academic risk and stress expert system",
	Long:         "Estudia classifies academic risk with a symbolic rule engine and academic stress with a fuzzy inference engine.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.estudia.yaml)")
	rootCmd.PersistentFlags().String("method", "", "defuzzification method: bisector or centroid (or set ESTUDIA_FUZZY_METHOD)")
	rootCmd.PersistentFlags().Bool("debug", false, "log engine diagnostics to stderr")

	viper.BindPFlag("fuzzy.method", rootCmd.PersistentFlags().Lookup("method"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(riskCmd)
	rootCmd.AddCommand(stressCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads .env, the config file and ESTUDIA_* variables.
func initConfig() {
	// A missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".estudia")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Warning: could not read config file %s: %v\n", cfgFile, err)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger returns the process logger. Unless always is set, output is
// discarded outside debug mode.
func newLogger(cfg config.Config, always bool) *log.Logger {
	if !always && !cfg.Debug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "estudia: ", log.LstdFlags)
}

// newService loads the configuration and builds both engines.
func newService(always bool) (config.Config, *evaluation.Service, *log.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger := newLogger(cfg, always)
	svc, err := evaluation.NewService(cfg.Fuzzy, logger)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("create evaluation service: %w", err)
	}
	return cfg, svc, logger, nil
}
