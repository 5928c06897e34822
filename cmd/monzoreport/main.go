package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/petebray/monzoreport/internal/config"
	"github.com/petebray/monzoreport/internal/export"
	"github.com/petebray/monzoreport/internal/report"
	"github.com/petebray/monzoreport/pkg/monzo"
)

// cli flags; the program runs the full pipeline with no arguments
var cli struct {
	EnvFile string `help:"Path to a .env file with the Monzo credentials."`
	Output  string `help:"Path of the spreadsheet to write." placeholder:"FILE"`
	NoOpen  bool   `help:"Do not open the spreadsheet after writing it."`
	Verbose bool   `help:"Enable debug logging and account listing."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("monzoreport"),
		kong.Description("Fetch Monzo transactions and write a categorized expenditure report."),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := newSlogLogger(level)

	cfg := config.Load(cli.EnvFile)
	if cli.Output != "" {
		cfg.OutputFile = cli.Output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := monzo.NewClient(&monzo.ClientOptions{
		BaseURL:     cfg.BaseURL,
		AccessToken: cfg.AccessToken,
		Timeout:     cfg.HTTPTimeout,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()

	// The authentication check is informational only; a failure is
	// reported and the pipeline carries on.
	if identity, err := client.Ping.WhoAmI(ctx); err != nil {
		if apiErr, ok := monzo.AsAPIError(err); ok {
			logger.Warn("authentication failed", "status", apiErr.StatusCode, "response", apiErr.Body)
		} else {
			logger.Warn("authentication check failed", "error", err)
		}
	} else {
		logger.Info("authentication successful", "user_id", identity.UserID)
	}

	if cli.Verbose {
		listAccounts(ctx, client, logger, cfg.AccountID)
	}

	txns, err := client.Transactions.List(ctx, cfg.AccountID)
	if err != nil {
		return err
	}

	if len(txns) == 0 {
		fmt.Println("No transactions found.")
		return nil
	}

	summary := report.Categorize(txns, report.DefaultCategories())

	fmt.Println("\nTotal Expenditure by Category (Current Month):")
	for _, category := range summary.Categories() {
		fmt.Printf("%s: %s\n", category, report.FormatGBP(summary.CategoryTotal(category)))
	}

	grid := report.BuildGrid(summary)

	writer := export.NewWriter(cfg.OutputFile, logger)
	path, err := writer.Write(grid)
	if err != nil {
		return err
	}
	fmt.Printf("Results saved to %q.\n", path)

	var viewer export.Viewer = export.OSViewer{}
	if cli.NoOpen {
		viewer = export.NopViewer{}
	}
	if err := viewer.Open(path); err != nil {
		logger.Warn("could not open the report in a viewer", "error", err)
	}

	return nil
}

// listAccounts logs the accounts visible to the token so a
// misconfigured MONZO_ACCOUNT_ID is easy to spot
func listAccounts(ctx context.Context, client *monzo.Client, logger *slogLogger, accountID string) {
	accounts, err := client.Accounts.List(ctx)
	if err != nil {
		logger.Debug("could not list accounts", "error", err)
		return
	}
	for _, acct := range accounts {
		logger.Debug("account", "id", acct.ID, "description", acct.Description, "closed", acct.Closed)
	}

	balance, err := client.Accounts.Balance(ctx, accountID)
	if err != nil {
		logger.Debug("could not fetch balance", "error", err)
		return
	}
	logger.Debug("balance",
		"balance", report.FormatGBP(float64(balance.Balance)/100.0),
		"spend_today", report.FormatGBP(float64(balance.SpendToday)/100.0))
}
