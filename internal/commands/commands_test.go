package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise-dev/spendwise/internal/config"
)

const testStatement = "../../testdata/statement.csv"

func runSpendwise(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeStatement(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	content := "Date,Amount,Category\n" + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInit_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := runSpendwise(t, "init", dir, "--name", "Avery", "--salary", "3200")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "Avery", cfg.Profile.Name)
	assert.InDelta(t, 3200, cfg.Budget.MonthlySalary, 0.001)
	assert.InDelta(t, 0.20, cfg.Budget.SavingsRate, 0.001)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	_, err := runSpendwise(t, "init", dir, "--name", "Avery")
	require.NoError(t, err)

	_, err = runSpendwise(t, "init", dir, "--name", "Avery")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestSummary_SpecificMonth(t *testing.T) {
	out, err := runSpendwise(t, "summary", "-f", testStatement, "--year", "2025", "--month", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Summary (January 2025)")
	assert.Contains(t, out, "$1572.25")
	assert.Contains(t, out, "$314.45")
	assert.Contains(t, out, "Rent and Utilities")
	assert.Contains(t, out, "fixed cost", "tip keyed off the top category")
}

func TestSummary_DefaultsToLatestPeriod(t *testing.T) {
	out, err := runSpendwise(t, "summary", "-f", testStatement)
	require.NoError(t, err)
	assert.Contains(t, out, "Summary (February 2025)")
}

func TestSummary_PeriodFlag(t *testing.T) {
	out, err := runSpendwise(t, "summary", "-f", testStatement, "--period", "2024-12")
	require.NoError(t, err)
	assert.Contains(t, out, "Summary (December 2024)")

	_, err = runSpendwise(t, "summary", "-f", testStatement, "--period", "december")
	require.Error(t, err)
}

func TestSummary_Yearly(t *testing.T) {
	out, err := runSpendwise(t, "summary", "-f", testStatement, "--year", "2024", "--yearly")
	require.NoError(t, err)
	assert.Contains(t, out, "Summary (2024)")
}

func TestSummary_YearWithoutData(t *testing.T) {
	_, err := runSpendwise(t, "summary", "-f", testStatement, "--year", "2019")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transactions in year 2019")
}

func TestSummary_EmptyStatement(t *testing.T) {
	path := writeStatement(t,
		"2025-01-05,-3200,Income",
		"2025-01-10,400,Savings",
	)

	out, err := runSpendwise(t, "summary", "-f", path)
	require.NoError(t, err, "an empty result is a warning, not a failure")
	assert.Contains(t, out, "No spending transactions found")
}

func TestAnalyze(t *testing.T) {
	out, err := runSpendwise(t, "analyze", "-f", testStatement, "--year", "2025", "--month", "1", "--transactions")
	require.NoError(t, err)

	assert.Contains(t, out, "Analysis (January 2025)")
	assert.Contains(t, out, "Category spending:")
	assert.Contains(t, out, "Weekly trend:")
	assert.Contains(t, out, "Week 1")
	assert.Contains(t, out, "Transactions:")
	assert.Contains(t, out, "2025-01-02")

	// Category ranking starts with the biggest spender.
	rentIdx := strings.Index(out, "Rent")
	groceriesIdx := strings.Index(out, "Groceries")
	require.Positive(t, rentIdx)
	require.Positive(t, groceriesIdx)
	assert.Less(t, rentIdx, groceriesIdx)
}

func TestAnalyze_YearlySeries(t *testing.T) {
	out, err := runSpendwise(t, "analyze", "-f", testStatement, "--year", "2024", "--yearly")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly trend:")
	assert.Contains(t, out, "November")
	assert.Contains(t, out, "December")
}

func TestForecast(t *testing.T) {
	out, err := runSpendwise(t, "forecast", "-f", testStatement)
	require.NoError(t, err)

	assert.Contains(t, out, "Spending forecast")
	// Predictions run from the month after the last observed one.
	assert.Contains(t, out, "2025-03")
	assert.Contains(t, out, "2026-02")
	assert.Contains(t, out, "Total")
}

func TestForecast_InsufficientData(t *testing.T) {
	path := writeStatement(t, "2025-01-05,50,Groceries")

	_, err := runSpendwise(t, "forecast", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient history")
}

func TestForecast_SalaryFromEnv(t *testing.T) {
	t.Setenv("SPENDWISE_SALARY", "5000")
	path := writeStatement(t,
		"2025-01-05,1000,Groceries",
		"2025-02-05,1000,Groceries",
	)

	out, err := runSpendwise(t, "forecast", "-f", path)
	require.NoError(t, err)
	// Flat 1000 spending against a 5000 salary leaves 4000 every month.
	assert.Contains(t, out, "$4000.00")
}

func TestPeriods(t *testing.T) {
	out, err := runSpendwise(t, "periods", "-f", testStatement)
	require.NoError(t, err)

	assert.Contains(t, out, "2024: November, December")
	assert.Contains(t, out, "2025: January, February")
	assert.Contains(t, out, "Default: February 2025")
}

func TestUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("binary"), 0o644))

	_, err := runSpendwise(t, "summary", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported statement format")
}
