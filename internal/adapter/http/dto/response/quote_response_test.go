package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"property_quote/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 890_000_000, time.FixedZone("CST", -6*3600))
	q := entities.Quote{
		ID: "q-1",
		Property: entities.Property{
			Address:    &entities.Address{Street: "123 Main St", City: "Austin", State: "TX", ZipCode: "78701"},
			SquareFeet: 2000,
			Coverage:   300000,
		},
		Amount:    1000,
		Status:    entities.QuoteStatusStandard,
		Breakdown: entities.Breakdown{BaseRate: 0.5, RiskMultiplier: 1, CoverageMultiplier: 1, Subtotal: 1000, Total: 1000},
		Timestamp: ts,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.Amount != 1000 || res.Status != "standard" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Property.Address == nil || res.Property.Address.ZipCode != "78701" {
		t.Fatalf("unexpected address: %+v", res.Property.Address)
	}
	if res.Breakdown.Total != res.Amount {
		t.Fatalf("breakdown total must equal amount: %+v", res.Breakdown)
	}
	if res.Timestamp != "2026-03-04T11:06:07.890Z" {
		t.Fatalf("unexpected timestamp %q", res.Timestamp)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	if strings.Contains(string(raw), "contactInfo") {
		t.Fatalf("contactInfo must be omitted for standard quotes: %s", raw)
	}
}

func TestFromQuote_ContactInfo(t *testing.T) {
	q := entities.Quote{
		Amount:      7500,
		IsHighValue: true,
		Status:      entities.QuoteStatusContactRequired,
		ContactInfo: &entities.ContactInfo{Message: "Call us", Phone: "1-800", Email: "a@b.c"},
	}

	res := FromQuote(q)
	if res.ContactInfo == nil || res.ContactInfo.Phone != "1-800" {
		t.Fatalf("expected contact info, got %+v", res.ContactInfo)
	}
	if !res.IsHighValue || res.Status != "contact_required" {
		t.Fatalf("unexpected status: %+v", res)
	}
}

func TestNewHealthResponse(t *testing.T) {
	res := NewHealthResponse(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if res.Status != "ok" || res.Timestamp != "2026-01-01T00:00:00.000Z" {
		t.Fatalf("unexpected health response: %+v", res)
	}
}
