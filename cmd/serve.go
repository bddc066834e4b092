package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/chordgrid/analysis"
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/db"
	"github.com/jsphweid/chordgrid/model"
	"github.com/jsphweid/chordgrid/transpose"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis API",
	Long:  `Serves the analysis API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not decode request body: "+err.Error())
		return
	}

	result := analysis.RunRaw(input.Chords, input.Beats, input.Candidates, input.PickupBeatsCount)
	result.Id = uuid.New().String()

	if constants.CacheEnabled() {
		if err := db.PutAnalysis(result); err != nil {
			// the cache is best effort; the analysis is still good
			log.Printf("Could not cache analysis %v: %v", result.Id, err)
		}
	}
	json.NewEncoder(w).Encode(result)
}

func handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !constants.CacheEnabled() {
		writeError(w, 404, "Analysis cache is disabled")
		return
	}
	result, found, err := db.GetAnalysis(id)
	if err != nil {
		writeError(w, 500, "Cache lookup failed: "+err.Error())
		return
	}
	if !found {
		writeError(w, 404, fmt.Sprintf("No analysis with id %v", id))
		return
	}
	json.NewEncoder(w).Encode(result)
}

func handleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not decode request body: "+err.Error())
		return
	}
	targetKey := input.TargetKey
	if targetKey == "" {
		targetKey = transpose.TargetKey("C", input.Semitones)
	}
	res := model.TransposeResponse{
		Chords:    transpose.Batch(input.Chords, input.Semitones, targetKey),
		TargetKey: targetKey,
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", handleAnalyze).Methods("POST")
	router.HandleFunc("/analysis/{id}", handleGetAnalysis).Methods("GET")
	router.HandleFunc("/transpose", handleTranspose).Methods("POST")

	handler := cors.AllowAll().Handler(router)
	addr := ":" + constants.GetPort()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
