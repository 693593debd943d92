package cli

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/printadmin/internal/adapters/httpapi"
	"github.com/example/printadmin/internal/config"
	"github.com/example/printadmin/internal/db"
	"github.com/example/printadmin/internal/version"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// pinger is the slice of the transport client the API check needs.
type pinger interface {
	Ping(ctx context.Context, path string) error
	BaseURL() string
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate printadmin configuration and connectivity",
		Long: `Health check for printadmin.

Validates:
- The config file parses and api.url is usable
- The local audit log database opens and is migrated
- The print-shop API answers GET /api/campuses

Examples:
  printadmin doctor              # Run full health check
  printadmin doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{}

			cfgResult, cfg := checkConfig(configFlag)
			results = append(results, cfgResult)
			results = append(results, checkDatabase(db.GetDB))
			if cfg != nil {
				client := httpapi.NewClient(httpapi.Options{
					BaseURL:   cfg.API.URL,
					Timeout:   cfg.API.Timeout,
					UserAgent: version.UserAgent(),
				})
				results = append(results, checkAPI(cmd.Context(), client))
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				printCheckResults(results, hasErrors)
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func printCheckResults(results []CheckResult, hasErrors bool) {
	fmt.Println()
	fmt.Println("Check              Status")
	fmt.Println("─────────────────────────")
	for _, r := range results {
		fmt.Printf("%-18s %s\n", r.Name, r.Status)
	}
	fmt.Println()

	hasDetails := false
	for _, r := range results {
		if r.Status != "✓" && r.Details != "" {
			if !hasDetails {
				fmt.Println("Details:")
				hasDetails = true
			}
			fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
		}
	}

	if hasErrors {
		fmt.Println("\n⚠ Issues found. Run 'printadmin config init' to write a default config.")
	} else {
		fmt.Println("All checks passed.")
	}
}

// checkConfig loads the config at path (or the default location).
func checkConfig(path string) (CheckResult, *config.Config) {
	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: "  " + err.Error()}, nil
	}
	return CheckResult{Name: "Config", Status: "✓"}, cfg
}

// checkDatabase opens the audit log database and reports its schema version.
// A broken database only disables the audit trail, so it is a warning.
func checkDatabase(open func() (*sql.DB, error)) CheckResult {
	conn, err := open()
	if err != nil {
		return CheckResult{Name: "Audit log", Status: "⚠", Details: "  " + err.Error() + "\n  Changes will not be recorded."}
	}
	if _, err := db.CurrentVersion(conn); err != nil {
		return CheckResult{Name: "Audit log", Status: "⚠", Details: "  " + err.Error()}
	}
	return CheckResult{Name: "Audit log", Status: "✓"}
}

// checkAPI issues one GET against the campus collection.
func checkAPI(ctx context.Context, client pinger) CheckResult {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, httpapi.CampusesPath); err != nil {
		return CheckResult{
			Name:    "API",
			Status:  "✗",
			Details: fmt.Sprintf("  %s: %v", client.BaseURL(), err),
		}
	}
	return CheckResult{Name: "API", Status: "✓"}
}
