// Package report renders the console report and the narrative insights for
// an analysis run. It consumes the merged table and the aggregates the core
// pipeline produces and never mutates them.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"sentipulse/pkg/contracts/domain"
)

// Reporter writes the human-readable analysis report.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// SectionHeader prints a banner section title.
func (r *Reporter) SectionHeader(title string) {
	line := strings.Repeat("=", 50)
	fmt.Fprintf(r.w, "\n%s\n%s\n%s\n", line, strings.ToUpper(title), line)
}

// SubsectionHeader prints a subsection title.
func (r *Reporter) SubsectionHeader(title string) {
	fmt.Fprintf(r.w, "\n%s:\n", title)
}

// WriteOverview prints the dataset overview block.
func (r *Reporter) WriteOverview(o domain.DatasetOverview) {
	r.SectionHeader("Exploratory Data Analysis")

	r.SubsectionHeader("1. Dataset Overview")
	fmt.Fprintf(r.w, "   - Total merged records: %d\n", o.TotalRecords)
	if !o.DateMin.IsZero() {
		fmt.Fprintf(r.w, "   - Date range: %s to %s\n",
			o.DateMin.Format("2006-01-02"), o.DateMax.Format("2006-01-02"))
	}
	fmt.Fprintf(r.w, "   - Unique accounts: %d\n", o.UniqueAccounts)
	fmt.Fprintf(r.w, "   - Unique symbols: %d\n", o.UniqueCoins)

	r.SubsectionHeader("2. Sentiment Distribution")
	for _, classification := range sortedKeys(o.Distribution) {
		count := o.Distribution[classification]
		percentage := 0.0
		if o.TotalRecords > 0 {
			percentage = float64(count) / float64(o.TotalRecords) * 100
		}
		fmt.Fprintf(r.w, "   - %s: %d (%s)\n", classification, count, FormatPercentage(percentage))
	}

	r.SubsectionHeader("3. Trading Statistics")
	fmt.Fprintf(r.w, "   - Total PnL: %s\n", FormatCurrency(o.TotalPnL))
	fmt.Fprintf(r.w, "   - Average PnL per trade: %s\n", FormatCurrency(o.AvgPnL))
	fmt.Fprintf(r.w, "   - Total trading volume: %s\n", FormatCurrency(o.TotalVolume))
	fmt.Fprintf(r.w, "   - Average trade size: %s\n", FormatCurrency(o.AvgTradeSize))
}

// WriteGroupStats prints the per-sentiment performance blocks.
func (r *Reporter) WriteGroupStats(stats []domain.SentimentGroupStats) {
	r.SectionHeader("Sentiment-Performance Relationship Analysis")

	r.SubsectionHeader("1. Win Rates by Sentiment")
	for _, s := range stats {
		fmt.Fprintf(r.w, "   - %s: %s\n", s.Classification, FormatPercentage(s.WinRate))
	}

	r.SubsectionHeader("2. Detailed Performance Metrics")
	for _, s := range stats {
		fmt.Fprintf(r.w, "\n   %s:\n", s.Classification)
		fmt.Fprintf(r.w, "     - Total trades: %d\n", s.TradeCount)
		fmt.Fprintf(r.w, "     - Total PnL: %s\n", FormatCurrency(s.TotalPnL))
		fmt.Fprintf(r.w, "     - Average PnL: %s\n", FormatCurrency(s.AvgPnL))
		fmt.Fprintf(r.w, "     - Win rate: %s\n", FormatPercentage(s.WinRate))
		fmt.Fprintf(r.w, "     - Best trade: %s\n", FormatCurrency(s.MaxWin))
		fmt.Fprintf(r.w, "     - Worst trade: %s\n", FormatCurrency(s.MaxLoss))
		if s.HasLosses() {
			fmt.Fprintf(r.w, "     - Profit factor: %.2f\n", s.ProfitFactor)
		}
	}
}

// WriteSummary prints the per-stage pipeline summary.
func (r *Reporter) WriteSummary(s domain.StageSummary) {
	r.SectionHeader("Pipeline Summary")
	fmt.Fprintf(r.w, "   - Trade records: %d\n", s.TradeRecords)
	fmt.Fprintf(r.w, "   - Sentiment records: %d\n", s.SentimentRecords)
	fmt.Fprintf(r.w, "   - Merged records: %d\n", s.MergedRecords)
	if !s.MergedDateMin.IsZero() {
		fmt.Fprintf(r.w, "   - Merged date range: %s to %s\n",
			s.MergedDateMin.Format("2006-01-02"), s.MergedDateMax.Format("2006-01-02"))
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
