package request

import (
	"encoding/json"
	"testing"

	"stonecraft/internal/domain/entities"
)

func TestEstimateRequest_ToInput(t *testing.T) {
	t.Run("trims text fields", func(t *testing.T) {
		r := EstimateRequest{
			Material:   "  Granite ",
			EdgeFinish: " Polished  ",
			Status:     " Sent ",
			Length:     10,
		}

		in := r.ToInput()
		if in.Material != "Granite" || in.EdgeFinish != "Polished" {
			t.Fatalf("unexpected input: %+v", in)
		}
		if in.Status != entities.EstimateStatusSent {
			t.Fatalf("expected Sent status, got %q", in.Status)
		}
	})

	t.Run("empty status passes through for the pending default", func(t *testing.T) {
		in := EstimateRequest{Material: "Granite"}.ToInput()
		if in.Status != "" {
			t.Fatalf("expected empty status, got %q", in.Status)
		}
	})

	t.Run("submitted cost is not part of the input", func(t *testing.T) {
		var r EstimateRequest
		payload := `{"material":"Granite","length":10,"width":5,"thickness":2,"cost":999999}`
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if r.Cost != 999999 {
			t.Fatalf("expected cost to bind, got %v", r.Cost)
		}

		// ToInput drops it: the server reprices at save time.
		in := r.ToInput()
		if in.Length != 10 || in.Width != 5 || in.Thickness != 2 {
			t.Fatalf("unexpected input: %+v", in)
		}
	})
}
