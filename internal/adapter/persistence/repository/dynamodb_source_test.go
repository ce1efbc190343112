package repository

import (
	"context"
	"errors"
	"testing"

	"property_quote/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	pages   [][]map[string]types.AttributeValue
	scanErr error
	item    map[string]types.AttributeValue
	getErr  error

	scans     int
	gotTable  string
	gotGetKey string
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.gotTable = aws.ToString(in.TableName)
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	out := &dynamodb.ScanOutput{Items: f.pages[f.scans]}
	f.scans++
	if f.scans < len(f.pages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"zip_code": &types.AttributeValueMemberS{Value: "page"},
		}
	}
	return out, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.gotTable = aws.ToString(in.TableName)
	if k, ok := in.Key["id"].(*types.AttributeValueMemberS); ok {
		f.gotGetKey = k.Value
	}
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dynamodb.GetItemOutput{Item: f.item}, nil
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestDynamoSource_LoadRiskTable(t *testing.T) {
	t.Run("paginates and splits default", func(t *testing.T) {
		fake := &fakeDynamo{pages: [][]map[string]types.AttributeValue{
			{
				mustMarshal(t, riskItem{ZipCode: "33139", Risk: "high", Multiplier: 1.8, Description: "Hurricane-prone area"}),
			},
			{
				mustMarshal(t, riskItem{ZipCode: "default", Risk: "medium", Multiplier: 1.1, Description: "Standard"}),
				mustMarshal(t, riskItem{ZipCode: "78701", Risk: "low", Multiplier: 1.0}),
			},
		}}
		src := NewDynamoSource(fake, "", "")

		table, err := src.LoadRiskTable(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fake.scans != 2 {
			t.Fatalf("expected 2 scan pages, got %d", fake.scans)
		}
		if fake.gotTable != DefaultRiskFactorsTable {
			t.Fatalf("expected default table name, got %q", fake.gotTable)
		}
		if len(table.ByZipCode) != 2 || table.Default.Multiplier != 1.1 {
			t.Fatalf("unexpected table: %+v", table)
		}
		if _, ok := table.ByZipCode["default"]; ok {
			t.Fatalf("default row must not be a zip entry")
		}
	})

	t.Run("missing default", func(t *testing.T) {
		fake := &fakeDynamo{pages: [][]map[string]types.AttributeValue{
			{mustMarshal(t, riskItem{ZipCode: "78701", Multiplier: 1})},
		}}
		_, err := NewDynamoSource(fake, "risk", "rules").LoadRiskTable(context.Background())
		if !errors.Is(err, entities.ErrInvalidData) {
			t.Fatalf("expected ErrInvalidData, got %v", err)
		}
	})

	t.Run("scan error", func(t *testing.T) {
		fake := &fakeDynamo{scanErr: errors.New("throttled")}
		_, err := NewDynamoSource(fake, "risk", "rules").LoadRiskTable(context.Background())
		if !errors.Is(err, entities.ErrDataUnavailable) {
			t.Fatalf("expected ErrDataUnavailable, got %v", err)
		}
	})
}

func TestDynamoSource_LoadRateTable(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeDynamo{item: mustMarshal(t, rulesItem{
			ID:                 "current",
			BaseRatePerSqFt:    0.5,
			HighValueThreshold: 5000,
			ContactMessage:     "Call us",
			ContactPhone:       "555",
			ContactEmail:       "a@b.c",
			CoverageTiers: []tierItem{
				{LowerBound: 100001, UpperBound: 2000000, Multiplier: 1.0},
				{LowerBound: 50000, UpperBound: 100000, Multiplier: 0.8},
			},
		})}
		src := NewDynamoSource(fake, "risk", "rules")

		rates, err := src.LoadRateTable(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fake.gotTable != "rules" || fake.gotGetKey != "current" {
			t.Fatalf("unexpected request table=%q key=%q", fake.gotTable, fake.gotGetKey)
		}
		if rates.CoverageTiers[0].LowerBound != 50000 {
			t.Fatalf("tiers not sorted: %+v", rates.CoverageTiers)
		}
		if rates.ContactInfo.Email != "a@b.c" {
			t.Fatalf("unexpected contact info: %+v", rates.ContactInfo)
		}
		if err := rates.Validate(); err != nil {
			t.Fatalf("unexpected validation error: %v", err)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := NewDynamoSource(&fakeDynamo{}, "risk", "rules").LoadRateTable(context.Background())
		if !errors.Is(err, entities.ErrDataUnavailable) {
			t.Fatalf("expected ErrDataUnavailable, got %v", err)
		}
	})

	t.Run("get error", func(t *testing.T) {
		_, err := NewDynamoSource(&fakeDynamo{getErr: errors.New("boom")}, "risk", "rules").LoadRateTable(context.Background())
		if !errors.Is(err, entities.ErrDataUnavailable) {
			t.Fatalf("expected ErrDataUnavailable, got %v", err)
		}
	})
}
