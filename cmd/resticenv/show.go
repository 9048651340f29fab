package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [config]",
	Short: "Print the parsed configuration fields",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initConfig(args)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Field", "Value"})
		t.AppendRows([]table.Row{
			{"information.rclone_connection_name", config.Information.RcloneConnectionName},
			{"information.client_name", config.Information.ClientName},
			{"information.bucket_name", config.Information.BucketName},
			{"information.server_name", config.Information.ServerName},
			{"binaries.restic", config.Binaries.Restic},
		})
		t.Render()
	},
}
