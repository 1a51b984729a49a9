package cmd

import "github.com/spf13/cobra"

var (
	rootCmd = &cobra.Command{
		Use:   "courier",
		Short: "Compose and deliver templated email",
	}

	profilePath string
)

func init() {
	rootCmd.AddCommand(sendCmd)

	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "path to the YAML delivery profile")
}

func Execute() {
	err := rootCmd.Execute()
	cobra.CheckErr(err)
}
