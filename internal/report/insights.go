package report

import (
	"fmt"
	"math"
	"strings"

	"sentipulse/pkg/contracts/domain"
)

// Insights captures the headline findings of an analysis run.
type Insights struct {
	BestPerforming string  `json:"best_performing"`
	BestAvgPnL     float64 `json:"best_avg_pnl"`
	MostActive     string  `json:"most_active"`
	MostActiveN    int     `json:"most_active_trades"`
	LowestRisk     string  `json:"lowest_risk"`
	LowestRiskStd  float64 `json:"lowest_risk_std"`
}

// DeriveInsights picks the best performing, most active and lowest risk
// sentiment groups. Returns ok=false when there are no groups.
func DeriveInsights(stats []domain.SentimentGroupStats) (Insights, bool) {
	if len(stats) == 0 {
		return Insights{}, false
	}

	ins := Insights{
		BestAvgPnL:    math.Inf(-1),
		LowestRiskStd: math.Inf(1),
	}
	for _, s := range stats {
		if s.AvgPnL > ins.BestAvgPnL {
			ins.BestAvgPnL = s.AvgPnL
			ins.BestPerforming = s.Classification
		}
		if s.TradeCount > ins.MostActiveN {
			ins.MostActiveN = s.TradeCount
			ins.MostActive = s.Classification
		}
		if s.PnLStdDev < ins.LowestRiskStd {
			ins.LowestRiskStd = s.PnLStdDev
			ins.LowestRisk = s.Classification
		}
	}
	return ins, true
}

// Strategies returns the canned strategy recommendation lines keyed off the
// insights.
func (ins Insights) Strategies() []string {
	strategies := []string{
		"CONTRARIAN STRATEGY: Consider increasing position sizes during 'Extreme Fear' periods if historical data shows recovery patterns.",
		"MOMENTUM STRATEGY: Reduce exposure during sustained fear periods to minimize downside risk.",
		"RISK MANAGEMENT: Implement tighter stop-losses during high-volatility sentiment periods.",
		"POSITION SIZING: Adjust position sizes based on current fear/greed index levels.",
		"TIMING STRATEGY: Use sentiment extremes as potential entry/exit signals for swing trading.",
	}

	if strings.Contains(ins.BestPerforming, "Fear") {
		strategies = append(strategies,
			fmt.Sprintf("FEAR OPPORTUNITY: Historical data shows %s periods offer good trading opportunities.", ins.BestPerforming))
	}
	if strings.Contains(ins.BestPerforming, "Greed") {
		strategies = append(strategies,
			fmt.Sprintf("GREED CAUTION: While %s shows good average returns, consider taking profits during extreme greed.", ins.BestPerforming))
	}
	if ins.MostActive != ins.BestPerforming {
		strategies = append(strategies,
			fmt.Sprintf("ACTIVITY vs PERFORMANCE: Most trading happens during %s, but best performance is during %s.", ins.MostActive, ins.BestPerforming))
	}

	return strategies
}

// WriteInsights prints the insight block and strategy recommendations.
func (r *Reporter) WriteInsights(ins Insights) {
	r.SectionHeader("Insights and Trading Strategies")

	r.SubsectionHeader("Key Insights")
	fmt.Fprintf(r.w, "   1. BEST PERFORMING SENTIMENT: %s with average PnL of %s\n",
		ins.BestPerforming, FormatCurrency(ins.BestAvgPnL))
	fmt.Fprintf(r.w, "   2. MOST ACTIVE TRADING: %s with %d trades\n",
		ins.MostActive, ins.MostActiveN)
	fmt.Fprintf(r.w, "   3. LOWEST RISK SENTIMENT: %s with PnL std dev of %s\n",
		ins.LowestRisk, FormatCurrency(ins.LowestRiskStd))

	r.SubsectionHeader("Recommended Trading Strategies")
	for i, strategy := range ins.Strategies() {
		fmt.Fprintf(r.w, "   %d. %s\n", i+1, strategy)
	}
}
