package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordgrid/midiout"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <chords.json> <beats.json> <out.mid>",
	Short: "Exports the chord track as MIDI",
	Long:  `Analyzes detection output and writes the chord track as a standard MIDI file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			panic("Need chords.json, beats.json and an output path...")
		}
		result := runAnalysis(args[0], args[1])
		times := make([]float64, 0, len(result.Grid.OriginalAudioMapping))
		for _, m := range result.Grid.OriginalAudioMapping {
			times = append(times, m.Timestamp)
		}
		if err := midiout.WriteFile(args[2], result.SyncedBeats, times, result.BPM); err != nil {
			panic("Could not write midi file: " + err.Error())
		}
		fmt.Printf("Wrote %v (%v/4 time, %.1f bpm)\n", args[2], result.TimeSignature, result.BPM)
	},
}
