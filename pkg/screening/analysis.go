package screening

import (
	"fmt"
	"strings"

	"complyhub/pkg/platform/apiclient"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Matches above this confidence escalate a PEP or watchlist hit to critical.
const highConfidence = 0.8

// Matches beyond this count trigger a prioritisation recommendation.
const manyMatches = 10

// BranchError is taken when no check result is available.
const BranchError = "error"

type Analysis struct {
	RiskLevel       RiskLevel `json:"riskLevel"`
	Recommendations []string  `json:"recommendations"`
	Summary         string    `json:"summary"`
}

// AnalyzeResult derives a risk level and recommendations from a check result.
func AnalyzeResult(result CheckResult) Analysis {
	summary := result.Breakdown.Summary
	risk := RiskLow
	recs := []string{}

	switch result.Outcome {
	case OutcomeClear:
		recs = append(recs, "Client cleared for onboarding")

	case OutcomeAttention:
		if summary.PEPMatches > 0 || summary.WatchlistMatches > 0 {
			if hasHighConfidence(result.Breakdown.Matches) {
				risk = RiskCritical
				recs = append(recs,
					"Manual review required - high confidence matches found",
					"Consider enhanced due diligence")
			} else {
				risk = RiskHigh
				recs = append(recs, "Manual review recommended")
			}
		}
		if summary.AdverseMediaMatches > 0 {
			if risk == RiskLow {
				risk = RiskMedium
			}
			recs = append(recs, "Review adverse media findings")
		}
		if summary.TotalMatches > manyMatches {
			recs = append(recs, "Multiple matches found - prioritize high confidence results")
		}

	default:
		risk = RiskMedium
		recs = append(recs, "Screening could not be processed - retry recommended")
	}

	return Analysis{
		RiskLevel:       risk,
		Recommendations: recs,
		Summary: fmt.Sprintf("%s result with %d total matches (%d PEP, %d watchlist, %d adverse media)",
			strings.ToUpper(string(result.Outcome)),
			summary.TotalMatches, summary.PEPMatches, summary.WatchlistMatches, summary.AdverseMediaMatches),
	}
}

func hasHighConfidence(matches []Match) bool {
	for _, m := range matches {
		if m.Confidence > highConfidence {
			return true
		}
	}
	return false
}

// AssessOverallRisk rolls several check results up into one verdict.
func AssessOverallRisk(results []CheckResult) string {
	var high bool
	for _, r := range results {
		switch AnalyzeResult(r).RiskLevel {
		case RiskCritical:
			return "CRITICAL - Immediate review required"
		case RiskHigh:
			high = true
		}
	}
	if high {
		return "HIGH - Enhanced due diligence recommended"
	}
	return "ACCEPTABLE - Standard onboarding may proceed"
}

// Branch picks the node output for a check response: the outcome name, or
// "error" when the call failed.
func Branch(resp apiclient.Response[CheckResult]) string {
	if !resp.OK() {
		return BranchError
	}
	switch o := resp.Data.Outcome; o {
	case OutcomeClear, OutcomeAttention, OutcomeNotProcessed:
		return string(o)
	default:
		return string(OutcomeNotProcessed)
	}
}
