package response

import (
	"time"

	"stonecraft/internal/domain/entities"
)

type EstimateResponse struct {
	ID             int64     `json:"id"`
	Material       string    `json:"material"`
	Length         float64   `json:"length"`
	Width          float64   `json:"width"`
	Thickness      float64   `json:"thickness"`
	EdgeFinish     string    `json:"edgeFinish"`
	MaterialCost   float64   `json:"materialCost"`
	EdgeFinishCost float64   `json:"edgeFinishCost"`
	LaborCost      float64   `json:"laborCost"`
	TaxRate        float64   `json:"taxRate"`
	Discount       float64   `json:"discount"`
	Cost           float64   `json:"cost"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// QuoteResponse carries the pricing engine output for POST /estimates/quote.
type QuoteResponse struct {
	Cost float64 `json:"cost"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:             e.ID,
		Material:       e.Material,
		Length:         e.Length,
		Width:          e.Width,
		Thickness:      e.Thickness,
		EdgeFinish:     e.EdgeFinish,
		MaterialCost:   e.MaterialCost,
		EdgeFinishCost: e.EdgeFinishCost,
		LaborCost:      e.LaborCost,
		TaxRate:        e.TaxRate,
		Discount:       e.Discount,
		Cost:           e.Cost,
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func FromEstimates(es []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEstimate(e))
	}
	return out
}
