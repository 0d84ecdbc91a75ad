package model

// CalculationMetadata describes one engine invocation.
type CalculationMetadata struct {
	CalculationID          string `json:"calculationId"`
	Jurisdiction           string `json:"jurisdiction"`
	TaxYear                int    `json:"taxYear"`
	CalculationStartedAt   string `json:"calculationStartedAt"`
	CalculationCompletedAt string `json:"calculationCompletedAt"`
	CalculationDurationMs  int64  `json:"calculationDurationMs"`
	CalculationOutcome     string `json:"calculationOutcome"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// CalculationResponse is the service envelope around a TaxResult.
type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculationMetadata"`
	Result              *TaxResult          `json:"result"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}
