package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"apptrack/internal/store/jsonfile"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "apptrack",
	Short: "Apptrack is a command line tool for tracking job applications",
	Long: `apptrack is the command-line interface for the job application tracker.

Applications live in a single JSON file, so everything works offline and the
data stays greppable. The web interface (cmd/web) shares the same file.

Common workflows:

  Record an application:
    apptrack add --company "Acme Corp" --position "Go Developer"

  List everything, filtered and sorted:
    apptrack list --status applied --sort company

  Move an application forward:
    apptrack update a1b2c3d4 --status interview_scheduled --note "Phone screen on Friday"

  See how the search is going:
    apptrack summary
    apptrack report

  Search external job boards:
    apptrack jobs search "golang developer" --location "Remote"

Configuration:
  Set the data file via flag, environment variable or a config file:
    APPTRACK_DATA_FILE    Path to the JSON data file (default: data/applications.json)`,
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".apptrack"
		viper.AddConfigPath(home)
		viper.SetConfigName(".apptrack")
		viper.SetConfigType("yaml")
	}

	// Read environment variables that match "APPTRACK_VARNAME"
	viper.SetEnvPrefix("APPTRACK")
	viper.AutomaticEnv()

	// The web server reads APPTRACK_DATA_FILE; honor the same variable here
	// so both binaries resolve one file.
	viper.BindEnv("data", "APPTRACK_DATA_FILE")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.apptrack.yaml)")

	rootCmd.PersistentFlags().String("data", filepath.Join("data", "applications.json"), "Path to the JSON data file")
	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
}

// quietLogger logs warnings and errors to stderr as plain text, not JSON,
// so CLI output stays readable.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// openStore opens the JSON store from the configured data path.
func openStore() (*jsonfile.Store, error) {
	return jsonfile.Open(viper.GetString("data"), quietLogger())
}
