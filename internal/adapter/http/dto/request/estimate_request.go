package request

import (
	"strings"

	"stonecraft/internal/domain/entities"
	"stonecraft/internal/usecase"
)

// EstimateRequest is the save payload for both POST /estimates and
// PUT /estimates/{id}. Field names match what the management frontend
// sends. Cost is accepted for wire compatibility but ignored: the server
// reprices the parameter set at save time.
type EstimateRequest struct {
	Material       string  `json:"material"`
	Length         float64 `json:"length"`
	Width          float64 `json:"width"`
	Thickness      float64 `json:"thickness"`
	EdgeFinish     string  `json:"edgeFinish"`
	MaterialCost   float64 `json:"materialCost"`
	EdgeFinishCost float64 `json:"edgeFinishCost"`
	LaborCost      float64 `json:"laborCost"`
	TaxRate        float64 `json:"taxRate"`
	Discount       float64 `json:"discount"`
	Cost           float64 `json:"cost"`
	Status         string  `json:"status"`
}

// ToInput maps the payload onto the lifecycle input. An empty status is
// passed through so the use case can apply the Pending default.
func (r EstimateRequest) ToInput() usecase.EstimateInput {
	return usecase.EstimateInput{
		Material:       strings.TrimSpace(r.Material),
		Length:         r.Length,
		Width:          r.Width,
		Thickness:      r.Thickness,
		EdgeFinish:     strings.TrimSpace(r.EdgeFinish),
		MaterialCost:   r.MaterialCost,
		EdgeFinishCost: r.EdgeFinishCost,
		LaborCost:      r.LaborCost,
		TaxRate:        r.TaxRate,
		Discount:       r.Discount,
		Status:         entities.EstimateStatus(strings.TrimSpace(r.Status)),
	}
}
