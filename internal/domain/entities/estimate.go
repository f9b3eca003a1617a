package entities

import "time"

// EstimateStatus tracks the sales pipeline stage of an estimate.
//
// Domain notes:
//   - Every estimate starts as Pending.
//   - The transition to Sent is what triggers the automatic follow-up task
//     on the create/update save path (see usecase.EstimateUseCase).
type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "Pending"
	EstimateStatusSent     EstimateStatus = "Sent"
	EstimateStatusApproved EstimateStatus = "Approved"
	EstimateStatusDeclined EstimateStatus = "Declined"
)

// ValidEstimateStatus reports whether s is one of the four pipeline stages.
func ValidEstimateStatus(s EstimateStatus) bool {
	switch s {
	case EstimateStatusPending, EstimateStatusSent, EstimateStatusApproved, EstimateStatusDeclined:
		return true
	}
	return false
}

// Estimate is a priced fabrication quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (number, allocated from the counters table)
//
// Monetary representation:
//   - Cost is the snapshot of the pricing engine output at save time.
//     Later parameter edits only refresh it through an explicit re-save.
type Estimate struct {
	ID             int64          `json:"id"`
	Material       string         `json:"material"`
	Length         float64        `json:"length"`
	Width          float64        `json:"width"`
	Thickness      float64        `json:"thickness"`
	EdgeFinish     string         `json:"edgeFinish"`
	MaterialCost   float64        `json:"materialCost"`
	EdgeFinishCost float64        `json:"edgeFinishCost"`
	LaborCost      float64        `json:"laborCost"`
	TaxRate        float64        `json:"taxRate"`
	Discount       float64        `json:"discount"`
	Cost           float64        `json:"cost"`
	Status         EstimateStatus `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
