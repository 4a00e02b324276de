package main

import (
	"fmt"
	"os"

	"github.com/ribgsilva/private-notes/app/cmd/schema"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notes-admin",
	Short: "Administration of the private notes platform project",
}

func main() {
	rootCmd.AddCommand(schema.Command())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
