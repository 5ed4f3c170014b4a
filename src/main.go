package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"crosswarped.com/cliques"
)

type FiveCliquesRequest struct {
	Words        []string `json:"words"`
	WordScope    string   `json:"wordScope"`
	MaxSolutions int      `json:"maxSolutions"`
}

type FiveCliquesResponse struct {
	Success   bool     `json:"success"`
	Count     int64    `json:"count"`
	Solutions []string `json:"solutions"`
	Error     string   `json:"error,omitempty"`
}

func getWords(ctx context.Context, scope string) ([]string, error) {
	client, err := bigquery.NewClient(ctx, "xword-x")
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query("SELECT word_key FROM `xword-x.FirestoreQuery.all_words` WHERE scope = @scope AND LENGTH(word_key) = 5")
	q.Location = "US"
	q.Parameters = []bigquery.QueryParameter{{Name: "scope", Value: scope}}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}

func execute(ctx context.Context, req FiveCliquesRequest) (int64, []string, error) {
	if req.MaxSolutions < 0 {
		return 0, nil, fmt.Errorf("maxSolutions must not be negative")
	}

	words := make([]string, 0, len(req.Words))
	for _, word := range req.Words {
		words = append(words, strings.ToLower(strings.TrimSpace(word)))
	}

	if req.WordScope != "" {
		scoped, err := getWords(ctx, req.WordScope)
		if err != nil {
			return 0, nil, fmt.Errorf("getWords: %w", err)
		}
		log.Info().Int("words", len(scoped)).Str("scope", req.WordScope).Msg("loaded-scope")
		words = append(words, scoped...)
	}

	if len(words) == 0 {
		return 0, nil, fmt.Errorf("words must not be empty")
	}

	solver := cliques.CreateSolverFromWords(words, cliques.SolverParams{})
	var sink cliques.SliceSink
	stats, err := solver.Solve(ctx, &sink)
	if err != nil {
		return 0, nil, err
	}
	log.Info().Int64("solutions", stats.Solutions).Dur("took", stats.Duration).Msg("solved")

	solutions := sink.Solutions()
	if req.MaxSolutions > 0 && len(solutions) > req.MaxSolutions {
		solutions = solutions[:req.MaxSolutions]
	}
	lines := make([]string, len(solutions))
	for i, sol := range solutions {
		lines[i] = sol.Repr()
	}
	return stats.Solutions, lines, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func fiveCliques(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req FiveCliquesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid-json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(FiveCliquesResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	count, solutions, err := execute(r.Context(), req)

	response := FiveCliquesResponse{
		Success:   err == nil,
		Count:     count,
		Solutions: solutions,
	}
	if err != nil {
		response.Error = err.Error()
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("encoding-response")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/five-cliques", fiveCliques)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatal().Err(err).Msg("funcframework.StartHostPort")
	}
}
