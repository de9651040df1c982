package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version and the configuration format version.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("ldform version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
			cmd.Println("config version\t", viper.GetInt(configVersionKey))
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
