package request

import (
	"encoding/json"
	"math"
	"testing"
)

func decode(t *testing.T, body string) QuoteRequest {
	t.Helper()
	var r QuoteRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	return r
}

func TestQuoteRequest_ToProperty(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		r := decode(t, `{"address":{"street":" 123 Main St ","city":"Austin","state":"TX","zipCode":"78701"},"squareFeet":2000,"coverage":300000.5}`)
		p := r.ToProperty()

		if p.Address == nil {
			t.Fatalf("expected address")
		}
		if p.Address.Street != " 123 Main St " || p.Address.ZipCode != "78701" {
			t.Fatalf("unexpected address: %+v", p.Address)
		}
		if p.SquareFeet != 2000 || p.Coverage != 300000.5 {
			t.Fatalf("unexpected numbers: %+v", p)
		}
	})

	t.Run("address fields are not trimmed", func(t *testing.T) {
		p := decode(t, `{"address":{"street":"   12","city":" A","state":"TX","zipCode":"78701"},"squareFeet":2000,"coverage":300000}`).ToProperty()
		if p.Address.Street != "   12" || p.Address.City != " A" {
			t.Fatalf("expected raw address fields, got %+v", p.Address)
		}
	})

	t.Run("missing address stays nil", func(t *testing.T) {
		p := decode(t, `{"squareFeet":2000,"coverage":300000}`).ToProperty()
		if p.Address != nil {
			t.Fatalf("expected nil address, got %+v", p.Address)
		}
	})

	t.Run("non numeric values become NaN", func(t *testing.T) {
		p := decode(t, `{"squareFeet":"2000","coverage":null}`).ToProperty()
		if !math.IsNaN(p.SquareFeet) {
			t.Fatalf("expected NaN square feet, got %v", p.SquareFeet)
		}
		if !math.IsNaN(p.Coverage) {
			t.Fatalf("expected NaN coverage, got %v", p.Coverage)
		}
	})

	t.Run("json.Number is accepted", func(t *testing.T) {
		r := QuoteRequest{SquareFeet: json.Number("1500"), Coverage: json.Number("abc")}
		p := r.ToProperty()
		if p.SquareFeet != 1500 {
			t.Fatalf("expected 1500, got %v", p.SquareFeet)
		}
		if !math.IsNaN(p.Coverage) {
			t.Fatalf("expected NaN, got %v", p.Coverage)
		}
	})
}
