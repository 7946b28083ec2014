package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/josephlewis42/minish/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var cfgPath string

// defaultConfigDir is where init writes and the shell looks for a config
// when --config isn't given.
func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "minish")
}

func loadConfig() (*config.Configuration, error) {
	fsys := afero.NewOsFs()

	if cfgPath == "" {
		configuration, err := config.Load(fsys, defaultConfigDir())
		if errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return configuration, err
	}

	configuration, err := config.Load(fsys, cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}
	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minish",
	Short: "A minimal interactive shell",
	Long: `minish reads a command per line, runs builtins itself and launches
everything else as a child process, waiting for it to finish.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		return runShell(configuration)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if errors.Is(err, io.EOF) {
		// Input closed, the session is over.
		os.Exit(1)
	}
	cobra.CheckErr(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file or directory (default "+defaultConfigDir()+")")
}
