package cmd

import (
	"github.com/bimmerbailey/copygen/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List content types and the fields each one uses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := output.ParseFormat(viper.GetString("format"))
		w := output.New(cmd.OutOrStdout(), format, output.ColorNever)
		return w.WriteTypes(output.Catalog())
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
