package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type taskResult struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
}

type rewriteRequest struct {
	Article string `json:"article"`
	Model   string `json:"model"`
}

type rewriteResponse struct {
	Left      taskResult `json:"left"`
	Right     taskResult `json:"right"`
	Model     string     `json:"model"`
	ElapsedMs int64      `json:"elapsed_ms"`
}

type modelsResponse struct {
	Models   []string `json:"models"`
	Fallback bool     `json:"fallback"`
}

type result struct {
	Sample    string
	Chars     int
	Model     string
	Run       int
	ElapsedMs int64
	WallMs    int64
	LeftOK    bool
	RightOK   bool
	Error     string
}

func main() {
	url := flag.String("url", "http://localhost:8090", "API base URL")
	apiKey := flag.String("api-key", "", "service API key (optional)")
	runs := flag.Int("runs", 3, "number of runs per sample")
	model := flag.String("model", "", "model ID to use (default: first available)")
	flag.Parse()

	baseURL := strings.TrimRight(*url, "/")
	client := &http.Client{Timeout: 180 * time.Second}

	modelID := *model
	if modelID == "" {
		modelID = discoverModel(client, baseURL, *apiKey)
	}

	fmt.Printf("Benchmarking against %s using model: %s (%d runs per sample)\n", baseURL, modelID, *runs)

	var results []result
	var failures int
	for _, sample := range Samples {
		for run := 1; run <= *runs; run++ {
			fmt.Printf("  Running %s (run %d/%d)...", sample.Name, run, *runs)
			r := benchmark(client, baseURL, *apiKey, modelID, sample, run)
			results = append(results, r)
			if r.Error != "" {
				fmt.Printf(" FAILED (%s)\n", r.Error)
				failures++
			} else {
				fmt.Printf(" %dms\n", r.ElapsedMs)
			}
		}
	}

	fmt.Println()
	printTable(results)
	printSummary(results)

	if failures > 0 {
		os.Exit(1)
	}
}

func discoverModel(client *http.Client, baseURL, apiKey string) string {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/models", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating request: %v\n", err)
		os.Exit(1)
	}
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching models: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Models endpoint returned %d: %s\n", resp.StatusCode, body)
		os.Exit(1)
	}

	var mr modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding models: %v\n", err)
		os.Exit(1)
	}
	if len(mr.Models) == 0 {
		fmt.Fprintln(os.Stderr, "No models available")
		os.Exit(1)
	}
	if mr.Fallback {
		fmt.Fprintln(os.Stderr, "note: server is using its static model fallback list")
	}

	return mr.Models[0]
}

func benchmark(client *http.Client, baseURL, apiKey, modelID string, sample Sample, run int) result {
	fail := func(err string) result {
		return result{Sample: sample.Name, Chars: len(sample.Text), Run: run, Error: err}
	}

	payload, _ := json.Marshal(rewriteRequest{
		Article: sample.Text,
		Model:   modelID,
	})

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/rewrite", strings.NewReader(string(payload)))
	if err != nil {
		return fail(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	start := time.Now()
	resp, err := client.Do(req)
	wallMs := time.Since(start).Milliseconds()

	if err != nil {
		return fail(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fail(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var rr rewriteResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return fail(err.Error())
	}

	return result{
		Sample:    sample.Name,
		Chars:     len(sample.Text),
		Model:     rr.Model,
		Run:       run,
		ElapsedMs: rr.ElapsedMs,
		WallMs:    wallMs,
		LeftOK:    rr.Left.Success,
		RightOK:   rr.Right.Success,
	}
}

func printTable(results []result) {
	fmt.Println("| Sample | Chars | Model | Run | Elapsed (ms) | Wall (ms) | Left | Right |")
	fmt.Println("|--------|-------|-------|-----|--------------|-----------|------|-------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-6s | %5d | %-20s | %d | %12s | %9s | %4s | %5s |\n",
				r.Sample, r.Chars, "-", r.Run, "FAIL", "-", "-", "-")
			continue
		}
		fmt.Printf("| %-6s | %5d | %-20s | %d | %12d | %9d | %4s | %5s |\n",
			r.Sample, r.Chars, r.Model, r.Run, r.ElapsedMs, r.WallMs, mark(r.LeftOK), mark(r.RightOK))
	}
}

func mark(ok bool) string {
	if ok {
		return "ok"
	}
	return "err"
}

func printSummary(results []result) {
	var ok []result
	for _, r := range results {
		if r.Error == "" {
			ok = append(ok, r)
		}
	}

	failed := len(results) - len(ok)

	if len(ok) == 0 {
		fmt.Printf("\nSummary: all %d runs failed\n", len(results))
		return
	}

	var totalElapsed int64
	minElapsed := ok[0].ElapsedMs
	maxElapsed := ok[0].ElapsedMs
	minSample := ok[0].Sample
	maxSample := ok[0].Sample

	for _, r := range ok {
		totalElapsed += r.ElapsedMs
		if r.ElapsedMs < minElapsed {
			minElapsed = r.ElapsedMs
			minSample = r.Sample
		}
		if r.ElapsedMs > maxElapsed {
			maxElapsed = r.ElapsedMs
			maxSample = r.Sample
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Avg elapsed: %dms\n", totalElapsed/int64(len(ok)))
	fmt.Printf("- Min elapsed: %dms (%s)\n", minElapsed, minSample)
	fmt.Printf("- Max elapsed: %dms (%s)\n", maxElapsed, maxSample)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", len(results), len(ok), failed)
}
