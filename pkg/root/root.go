package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mailblast",
	Short: "CSV-driven mail-merge email blast CLI",
	Long: `Reads recipient data from a CSV file, renders an email template per row
and sends one personalized email per recipient over a single SMTP session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func GetRoot() *cobra.Command {
	return rootCmd
}
