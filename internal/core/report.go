// ABOUTME: Cost and latency grading for a finished pipeline run
// ABOUTME: Band thresholds come from config, mock stages display as MOCK
package core

import (
	"fmt"
	"time"

	"github.com/harper/diary-standalone/internal/models"
)

// GradeBands holds the latency (seconds) and cost (dollars) thresholds
type GradeBands struct {
	LatencyGoodSecs      float64
	LatencyPoorSecs      float64
	CostExcellentDollars float64
	CostFairDollars      float64
}

// DefaultGradeBands mirrors the stock config defaults
var DefaultGradeBands = GradeBands{
	LatencyGoodSecs:      3.0,
	LatencyPoorSecs:      5.0,
	CostExcellentDollars: 0.002,
	CostFairDollars:      0.005,
}

// PerformanceReport grades one run on wall-clock latency and dollar cost
type PerformanceReport struct {
	ExecutionTime    time.Duration
	PerformanceGrade string
	PerformancePts   int
	CostGrade        string
	CostPts          int
	TotalCostDisplay string
}

// GradeRun assigns the latency and cost bands for a run. All-mock runs show
// "MOCK" instead of a dollar figure since no real spend happened.
func GradeRun(elapsed time.Duration, costs models.CostLedger, bands GradeBands) PerformanceReport {
	report := PerformanceReport{ExecutionTime: elapsed}

	switch secs := elapsed.Seconds(); {
	case secs > bands.LatencyPoorSecs:
		report.PerformanceGrade, report.PerformancePts = "POOR", 5
	case secs > bands.LatencyGoodSecs:
		report.PerformanceGrade, report.PerformancePts = "GOOD", 10
	default:
		report.PerformanceGrade, report.PerformancePts = "EXCELLENT", 15
	}

	switch total := costs.TotalCost(); {
	case total >= bands.CostFairDollars:
		report.CostGrade, report.CostPts = "POOR", 0
	case total >= bands.CostExcellentDollars:
		report.CostGrade, report.CostPts = "FAIR", 5
	default:
		report.CostGrade, report.CostPts = "EXCELLENT", 10
	}

	report.TotalCostDisplay = formatTotalCost(costs)
	return report
}

// FormatStageCost renders one stage's spend, labelling unbilled stages MOCK
func FormatStageCost(stage models.StageCost) string {
	if !stage.Provenance.Billable() {
		return "MOCK"
	}
	return fmt.Sprintf("$%.4f", stage.Cost)
}

func formatTotalCost(costs models.CostLedger) string {
	if costs.AllMock() {
		return "MOCK"
	}
	return fmt.Sprintf("$%.4f", costs.TotalCost())
}
