// Command settlement-report summarizes claim settlement workflows on a
// Temporal namespace: how many settled, failed, or are still waiting on the
// asset-transfer collaborator, with per-status latency figures.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"
	"go.temporal.io/sdk/client"
)

const (
	defaultTemporalHost = "localhost:7233"
	defaultNamespace    = "default"
	workflowType        = "ClaimSettlement"
)

type Config struct {
	TemporalHost string
	Namespace    string
	Since        time.Duration // Only include settlements started within this window (0 = all)
	QueryTimeout time.Duration // Timeout for each Temporal query
	OutputFile   string        // Output markdown file path (optional)
	PageSize     int           // Page size for Temporal queries
	Debug        bool
}

// SettlementStats aggregates the settlement executions of one status bucket
type SettlementStats struct {
	Status        enums.WorkflowExecutionStatus
	Count         int
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	Executions    []SettlementExecution
}

type SettlementExecution struct {
	WorkflowID string
	RunID      string
	StartTime  time.Time
	CloseTime  *time.Time
	Duration   time.Duration
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		fmt.Printf("Error creating Temporal client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	fmt.Printf("Connected to Temporal at %s (namespace: %s)\n", cfg.TemporalHost, cfg.Namespace)
	fmt.Printf("Collecting %s executions...\n\n", workflowType)

	stats, err := collectSettlementStats(ctx, c, cfg)
	if err != nil {
		fmt.Printf("Error collecting stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("SETTLEMENT REPORT")
	fmt.Println(strings.Repeat("=", 80))
	printStats(stats)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, cfg, stats); err != nil {
			fmt.Printf("\nWarning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\nReport written to: %s\n", cfg.OutputFile)
		}
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	configFile := flag.String("config", "", "Path to JSON config file")
	flag.StringVar(&cfg.TemporalHost, "host", "", "Temporal host:port")
	flag.StringVar(&cfg.Namespace, "namespace", "", "Temporal namespace")
	flag.DurationVar(&cfg.Since, "since", 0, "Only include settlements started within this window (e.g. 24h)")
	flag.DurationVar(&cfg.QueryTimeout, "query-timeout", 30*time.Second, "Timeout for each Temporal query")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path")
	flag.IntVar(&cfg.PageSize, "page-size", 100, "Page size for Temporal queries")
	flag.BoolVar(&cfg.Debug, "debug", false, "Print every execution")
	flag.Parse()

	// Flags override the config file, the file overrides the defaults
	if *configFile != "" {
		fileCfg, err := LoadConfig(*configFile)
		if err != nil {
			fmt.Printf("Error loading config file: %v\n", err)
			os.Exit(1)
		}
		if cfg.TemporalHost == "" {
			cfg.TemporalHost = fileCfg.TemporalHost
		}
		if cfg.Namespace == "" {
			cfg.Namespace = fileCfg.Namespace
		}
	}

	if cfg.TemporalHost == "" {
		cfg.TemporalHost = defaultTemporalHost
	}
	if cfg.Namespace == "" {
		cfg.Namespace = defaultNamespace
	}

	return cfg
}

// collectSettlementStats pages through all claim settlement executions and
// buckets them by status
func collectSettlementStats(ctx context.Context, c client.Client, cfg *Config) (map[enums.WorkflowExecutionStatus]*SettlementStats, error) {
	query := fmt.Sprintf("WorkflowType = '%s'", workflowType)
	if cfg.Since > 0 {
		cutoff := time.Now().Add(-cfg.Since).UTC().Format(time.RFC3339)
		query = fmt.Sprintf("%s AND StartTime > '%s'", query, cutoff)
	}

	stats := make(map[enums.WorkflowExecutionStatus]*SettlementStats)
	var nextPageToken []byte

	for {
		queryCtx, queryCancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		resp, err := c.ListWorkflow(queryCtx, &workflowservice.ListWorkflowExecutionsRequest{
			Namespace:     cfg.Namespace,
			PageSize:      int32(cfg.PageSize),
			NextPageToken: nextPageToken,
			Query:         query,
		})
		queryCancel()
		if err != nil {
			return nil, fmt.Errorf("failed to list workflows: %w", err)
		}

		for _, execution := range resp.Executions {
			record(stats, execution, cfg.Debug)
		}

		nextPageToken = resp.NextPageToken
		if len(nextPageToken) == 0 {
			break
		}
	}

	return stats, nil
}

func record(stats map[enums.WorkflowExecutionStatus]*SettlementStats, execution *workflowpb.WorkflowExecutionInfo, debug bool) {
	status := execution.GetStatus()

	bucket, ok := stats[status]
	if !ok {
		bucket = &SettlementStats{Status: status}
		stats[status] = bucket
	}

	exec := SettlementExecution{
		WorkflowID: execution.GetExecution().GetWorkflowId(),
		RunID:      execution.GetExecution().GetRunId(),
	}
	if st := execution.GetStartTime(); st != nil {
		exec.StartTime = st.AsTime()
	}
	if ct := execution.GetCloseTime(); ct != nil {
		closeTime := ct.AsTime()
		exec.CloseTime = &closeTime
		exec.Duration = closeTime.Sub(exec.StartTime)
	}

	bucket.Count++
	bucket.Executions = append(bucket.Executions, exec)
	if exec.Duration > 0 {
		bucket.TotalDuration += exec.Duration
		if bucket.MinDuration == 0 || exec.Duration < bucket.MinDuration {
			bucket.MinDuration = exec.Duration
		}
		if exec.Duration > bucket.MaxDuration {
			bucket.MaxDuration = exec.Duration
		}
	}

	if debug {
		fmt.Printf("  %s  %s  %s\n", statusLabel(status), exec.WorkflowID, formatDuration(exec.Duration))
	}
}

func printStats(stats map[enums.WorkflowExecutionStatus]*SettlementStats) {
	if len(stats) == 0 {
		fmt.Println("No settlement executions found")
		return
	}

	total := 0
	for _, bucket := range sortedBuckets(stats) {
		total += bucket.Count
	}
	fmt.Printf("Total settlements: %d\n\n", total)

	fmt.Printf("%-12s %8s %12s %12s %12s\n", "STATUS", "COUNT", "AVG", "MIN", "MAX")
	fmt.Println(strings.Repeat("-", 60))
	for _, bucket := range sortedBuckets(stats) {
		fmt.Printf("%-12s %8d %12s %12s %12s\n",
			statusLabel(bucket.Status),
			bucket.Count,
			formatDuration(avgDuration(bucket)),
			formatDuration(bucket.MinDuration),
			formatDuration(bucket.MaxDuration),
		)
	}

	// Running settlements are waiting on a transfer result, so list them
	if running, ok := stats[enums.WORKFLOW_EXECUTION_STATUS_RUNNING]; ok {
		fmt.Printf("\nSettlements waiting on transfer results:\n")
		for _, exec := range running.Executions {
			fmt.Printf("  %s (started %s ago)\n", exec.WorkflowID, formatDuration(time.Since(exec.StartTime)))
		}
	}
}

func writeMarkdownReport(path string, cfg *Config, stats map[enums.WorkflowExecutionStatus]*SettlementStats) error {
	var b strings.Builder

	b.WriteString("# Settlement Report\n\n")
	b.WriteString(fmt.Sprintf("- Namespace: `%s`\n", cfg.Namespace))
	b.WriteString(fmt.Sprintf("- Generated: %s\n", time.Now().UTC().Format(time.RFC3339)))
	if cfg.Since > 0 {
		b.WriteString(fmt.Sprintf("- Window: last %s\n", cfg.Since))
	}
	b.WriteString("\n| Status | Count | Avg | Min | Max |\n")
	b.WriteString("|--------|-------|-----|-----|-----|\n")
	for _, bucket := range sortedBuckets(stats) {
		b.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s |\n",
			statusLabel(bucket.Status),
			bucket.Count,
			formatDuration(avgDuration(bucket)),
			formatDuration(bucket.MinDuration),
			formatDuration(bucket.MaxDuration),
		))
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

func sortedBuckets(stats map[enums.WorkflowExecutionStatus]*SettlementStats) []*SettlementStats {
	buckets := make([]*SettlementStats, 0, len(stats))
	for _, bucket := range stats {
		buckets = append(buckets, bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
	return buckets
}

func avgDuration(bucket *SettlementStats) time.Duration {
	settled := 0
	for _, exec := range bucket.Executions {
		if exec.Duration > 0 {
			settled++
		}
	}
	if settled == 0 {
		return 0
	}
	return bucket.TotalDuration / time.Duration(settled)
}

func statusLabel(status enums.WorkflowExecutionStatus) string {
	switch status {
	case enums.WORKFLOW_EXECUTION_STATUS_RUNNING:
		return "Running"
	case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
		return "Completed"
	case enums.WORKFLOW_EXECUTION_STATUS_FAILED:
		return "Failed"
	case enums.WORKFLOW_EXECUTION_STATUS_CANCELED:
		return "Canceled"
	case enums.WORKFLOW_EXECUTION_STATUS_TERMINATED:
		return "Terminated"
	case enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT:
		return "TimedOut"
	default:
		return status.String()
	}
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	if d < time.Minute {
		return d.Round(100 * time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}
