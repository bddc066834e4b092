package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordgrid/transpose"
)

var transposeSemitones int
var transposeKey string

func init() {
	transposeCmd.Flags().IntVarP(&transposeSemitones, "semitones", "s", 0, "semitones to shift, clamped to +/-6")
	transposeCmd.Flags().StringVarP(&transposeKey, "key", "k", "", "original key; decides sharp vs flat spelling of the result")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [chords...]",
	Short: "Transposes chord labels",
	Long:  `Transposes chord labels, respelling them for the shifted key.`,
	Run: func(cmd *cobra.Command, args []string) {
		targetKey := transpose.TargetKey(transposeKey, transposeSemitones)
		if transposeKey != "" {
			fmt.Printf("key: %v\n", targetKey)
		}
		for _, label := range transpose.Batch(args, transposeSemitones, targetKey) {
			fmt.Println(label)
		}
	},
}
