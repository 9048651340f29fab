package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	_config "github.com/tomruk/resticenv/internal/config"
	"github.com/tomruk/resticenv/internal/export"
	"github.com/tomruk/resticenv/internal/utils"
	"go.uber.org/zap"
)

var (
	config *_config.Config
	v      *viper.Viper

	debugLog = zap.NewNop()

	rootCmd = &cobra.Command{
		Use:   "resticenv -r <repo> [config]",
		Short: "Print export statements for driving restic over an rclone backend",
		Long: `resticenv reads a YAML configuration file and prints export statements
setting up the environment for restic over an rclone backend.

Evaluate the output in the calling shell:

    eval "$(resticenv -r myrepo)"`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			initConfig(args)

			repo, _ := cmd.Flags().GetString("repo")
			debugLog.Sugar().Debugf("rendering exports for repository %s", repo)

			e := &export.Env{Config: config, Repo: repo}
			err := e.Render(os.Stdout)
			if err != nil {
				exit(err)
			}
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(showCmd)

	rootCmd.Flags().StringP("repo", "r", "", "Repository name")
	rootCmd.MarkFlagRequired("repo")
	rootCmd.PersistentFlags().Bool("enable-log", false, "Enable debug logging to stderr")

	cobra.OnInitialize(initLogging)
}

func initConfig(args []string) {
	var (
		configFile string
		err        error
	)
	if len(args) >= 1 {
		configFile = args[0]
	}
	config, v, err = _config.Read(configFile)
	if err != nil {
		exit(err)
	}
	debugLog.Sugar().Debugf("using config: %s", v.ConfigFileUsed())
	config.PlaceEnvironmentVariables()
	err = config.Check()
	if err != nil {
		exit(err)
	}
}

func exit(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", utils.Red.Sprint("Error:"), err)
		os.Exit(1)
	}
	os.Exit(0)
}
