package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsphweid/chordgrid/analysis"
	"github.com/jsphweid/chordgrid/model"
	"github.com/jsphweid/chordgrid/util"
)

var analyzePickup int
var analyzeOut string

func init() {
	analyzeCmd.Flags().IntVar(&analyzePickup, "pickup", 0, "pickup beats before the first full measure")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "write the result to a file instead of stdout")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <chords.json> <beats.json>",
	Short: "Builds a chord grid from detection output",
	Long:  `Builds a chord grid from chord/beat detection output saved as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need chords.json and beats.json...")
		}
		result := runAnalysis(args[0], args[1])
		if analyzeOut != "" {
			util.WriteJSONOrPanic(analyzeOut, result)
			return
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			panic("Could not encode result: " + err.Error())
		}
	},
}

func runAnalysis(chordsPath, beatsPath string) model.AnalysisResult {
	chords := util.ReadJSONOrPanic[[]model.ChordEvent](chordsPath)
	result := analysis.RunRaw(chords, loadBeatTimes(beatsPath), nil, analyzePickup)
	result.Id = uuid.New().String()
	return result
}

// loadBeatTimes accepts both detection dumps we see in the wild: a raw
// timestamp array (upload pipeline) or an array of beat objects with a
// time field (streaming pipeline).
func loadBeatTimes(path string) []float64 {
	dat, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read beats file: " + err.Error())
	}
	var times []float64
	if err := json.Unmarshal(dat, &times); err == nil {
		return times
	}
	var events []model.BeatEvent
	if err := json.Unmarshal(dat, &events); err != nil {
		panic(fmt.Sprintf("Beats file %v is neither a number array nor beat objects: %v", path, err))
	}
	times = make([]float64, len(events))
	for i, e := range events {
		times[i] = e.Time
	}
	return times
}
