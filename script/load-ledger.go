package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRequest is the create panel payload
type TransactionRequest struct {
	Cheque string `json:"cheque"`
	Data   string `json:"data"`
	Valor  string `json:"valor"`
	Gerson string `json:"gerson"`
	Maneca string `json:"maneca"`
}

// LedgerResponse is the subset of the ledger view the check needs
type LedgerResponse struct {
	Empty       bool   `json:"empty"`
	TotalGerson string `json:"totalGerson"`
	TotalManeca string `json:"totalManeca"`
	Rows        []struct {
		ID uint64 `json:"id"`
	} `json:"rows"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	Gerson       decimal.Decimal
	Maneca       decimal.Decimal
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ExpectedGerson     decimal.Decimal
	ExpectedManeca     decimal.Decimal
}

func main() {
	concurrency := flag.Int("c", 4, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 50, "Number of transactions to create")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	password := flag.String("password", "", "Shared secret for /login")
	delayMs := flag.Int("delay", 50, "Delay between requests in milliseconds")
	flag.Parse()

	jar, _ := cookiejar.New(nil)
	client := &http.Client{Timeout: 10 * time.Second, Jar: jar}

	if err := login(client, *baseURL, *password); err != nil {
		fmt.Printf("Login failed: %v\n", err)
		return
	}

	before, err := fetchLedger(client, *baseURL)
	if err != nil {
		fmt.Printf("Could not read ledger: %v\n", err)
		return
	}

	stats := &TestStats{
		TotalRequests:  *totalRequests,
		ErrorCounts:    make(map[string]int),
		ExpectedGerson: decimal.RequireFromString(orZero(before.TotalGerson)),
		ExpectedManeca: decimal.RequireFromString(orZero(before.TotalManeca)),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	startTime := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(results)
	stats.TotalTime = time.Since(startTime)

	for result := range results {
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		if !result.Success {
			stats.FailedRequests++
			stats.ErrorCounts[result.Error.Error()]++
			continue
		}
		stats.SuccessfulRequests++
		stats.ExpectedGerson = stats.ExpectedGerson.Add(result.Gerson)
		stats.ExpectedManeca = stats.ExpectedManeca.Add(result.Maneca)
	}

	after, err := fetchLedger(client, *baseURL)
	if err != nil {
		fmt.Printf("Could not read ledger: %v\n", err)
		return
	}

	printResults(stats, len(before.Rows), after)
}

func worker(client *http.Client, baseURL string, delayMs int, jobs <-chan int, results chan<- TestResult) {
	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		gerson := decimal.New(rand.Int63n(20000)-10000, -2)
		maneca := decimal.New(rand.Int63n(20000)-10000, -2)
		payload := TransactionRequest{
			Cheque: fmt.Sprintf("LOAD %06d", jobID),
			Data:   time.Now().AddDate(0, 0, -rand.Intn(365)).Format(time.DateOnly),
			Valor:  decimal.New(rand.Int63n(500000), -2).String(),
			Gerson: gerson.String(),
			Maneca: maneca.String(),
		}

		body, _ := json.Marshal(payload)
		start := time.Now()
		resp, err := client.Post(baseURL+"/transactions", "application/json", bytes.NewReader(body))
		result := TestResult{ResponseTime: time.Since(start), Gerson: gerson, Maneca: maneca}

		switch {
		case err != nil:
			result.Error = err
		case resp.StatusCode != http.StatusCreated:
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		default:
			result.Success = true
		}
		if resp != nil {
			resp.Body.Close()
		}

		results <- result
	}
}

func login(client *http.Client, baseURL, password string) error {
	body, _ := json.Marshal(map[string]string{"password": password})
	resp, err := client.Post(baseURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return nil
}

func fetchLedger(client *http.Client, baseURL string) (*LedgerResponse, error) {
	resp, err := client.Get(baseURL + "/transactions")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var ledger LedgerResponse
	if err := json.NewDecoder(resp.Body).Decode(&ledger); err != nil {
		return nil, err
	}
	return &ledger, nil
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func printResults(stats *TestStats, rowsBefore int, after *LedgerResponse) {
	slices.Sort(stats.ResponseTimes)
	percentile := func(p int) time.Duration {
		if len(stats.ResponseTimes) == 0 {
			return 0
		}
		return stats.ResponseTimes[len(stats.ResponseTimes)*p/100]
	}

	fmt.Println("\n================= LOAD RESULTS =================")
	fmt.Printf("Requests:            %d\n", stats.TotalRequests)
	fmt.Printf("Saved:               %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed:              %d\n", stats.FailedRequests)
	fmt.Printf("Total time:          %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("P50 / P95 / P99:     %v / %v / %v\n", percentile(50), percentile(95), percentile(99))

	for errMsg, count := range stats.ErrorCounts {
		fmt.Printf("  %-40s: %d\n", errMsg, count)
	}

	fmt.Println("\n----------------- LEDGER CHECK -----------------")
	rowsOK := len(after.Rows) == rowsBefore+stats.SuccessfulRequests
	fmt.Printf("Rows:                %d -> %d (ok: %v)\n", rowsBefore, len(after.Rows), rowsOK)

	gersonOK := decimal.RequireFromString(orZero(after.TotalGerson)).Equal(stats.ExpectedGerson)
	manecaOK := decimal.RequireFromString(orZero(after.TotalManeca)).Equal(stats.ExpectedManeca)
	fmt.Printf("Total Gerson:        %s (expected %s, ok: %v)\n", after.TotalGerson, stats.ExpectedGerson.StringFixed(2), gersonOK)
	fmt.Printf("Total Maneca:        %s (expected %s, ok: %v)\n", after.TotalManeca, stats.ExpectedManeca.StringFixed(2), manecaOK)
}
