package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"

	"github.com/jsphweid/chordgrid/util"
)

var watchOut string

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "grid.json", "file the re-analyzed grid is written to")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <chords.json> <beats.json>",
	Short: "Re-analyzes whenever the input files change",
	Long:  `Polls the detection output files and rebuilds the grid when they change.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need chords.json and beats.json...")
		}
		watch(args[0], args[1])
	},
}

func watch(chordsPath, beatsPath string) {
	rebuild := func() {
		result := runAnalysis(chordsPath, beatsPath)
		util.WriteJSONOrPanic(watchOut, result)
		fmt.Printf("Rebuilt %v (%v beats)\n", watchOut, len(result.SyncedBeats))
	}
	rebuild()

	// detection services rewrite both files in quick succession, so
	// coalesce the burst into one rebuild
	debounced := debounce.New(500 * time.Millisecond)
	last := latestModTime(chordsPath, beatsPath)
	for range time.Tick(250 * time.Millisecond) {
		if mod := latestModTime(chordsPath, beatsPath); mod.After(last) {
			last = mod
			debounced(rebuild)
		}
	}
}

func latestModTime(paths ...string) time.Time {
	var latest time.Time
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest
}
