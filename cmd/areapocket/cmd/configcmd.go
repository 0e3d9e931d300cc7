package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "write a job settings file prefilled with default values",
	Long: `Write a job settings file in YAML format, prefilled with default values.

If FILE is not provided, 'areapocket.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "areapocket.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if !confirmIfExists(path, fmt.Sprintf("file %q already exists, overwrite? [y/N]", path)) {
			fmt.Println("aborted by user")
			return
		}
		check(marshalYAMLFile(path, DefaultJobConfig()))
		fmt.Printf("job settings written to %q\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
