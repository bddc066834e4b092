package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordgrid",
	Short: "Beat-synchronized chord grids",
	Long:  `Builds beat-synchronized chord grids from chord/beat detection model output.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
