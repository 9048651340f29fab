package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/tomruk/resticenv/internal/backup/provider"
	"github.com/tomruk/resticenv/internal/utils"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [config]",
	Short: "Check the configuration and the backup environment",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initConfig(args)

		errorFound := false
		utils.Bold.Println("Doctor:")
		fmt.Printf("    Using config: %s\n", v.ConfigFileUsed())

		info := &config.Information
		restic := provider.NewRestic(
			config.Binaries.Restic,
			info.RcloneConnectionName,
			info.BucketName,
			info.ClientName,
			info.ServerName,
		)

		path, err := restic.LookBinary()
		if err != nil {
			utils.Warn.Printf("    Warning: restic not found: %v\n", err)
			errorFound = true
		} else {
			fmt.Printf("    restic found at: %s\n", path)
		}

		rclone, err := exec.LookPath("rclone")
		if err != nil {
			utils.Warn.Printf("    Warning: rclone not found: %v\n", err)
			errorFound = true
		} else {
			fmt.Printf("    rclone found at: %s\n", rclone)
		}

		fmt.Printf("    Repository location looks like: %s\n", restic.RepoLocation("<repo>"))

		if !errorFound {
			utils.Success.Println("All good.")
		} else {
			utils.Red.Println("Error(s) occured.")
			os.Exit(1)
		}
	},
}
