package repository

import (
	"context"
	"fmt"
	"property_quote/internal/domain/entities"
	"property_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultRiskFactorsTable = "location_risk_factors"
	DefaultQuoteRulesTable  = "quote_rules"

	// defaultRiskKey is the zip_code of the row holding the default descriptor.
	defaultRiskKey = "default"
	// currentRulesID is the id of the quote_rules item in effect.
	currentRulesID = "current"
)

type riskItem struct {
	ZipCode     string  `dynamodbav:"zip_code"`
	Risk        string  `dynamodbav:"risk"`
	Multiplier  float64 `dynamodbav:"multiplier"`
	Description string  `dynamodbav:"description"`
}

type tierItem struct {
	LowerBound float64 `dynamodbav:"lower_bound"`
	UpperBound float64 `dynamodbav:"upper_bound"`
	Multiplier float64 `dynamodbav:"multiplier"`
}

type rulesItem struct {
	ID                 string     `dynamodbav:"id"`
	BaseRatePerSqFt    float64    `dynamodbav:"base_rate_per_sq_ft"`
	HighValueThreshold float64    `dynamodbav:"high_value_threshold"`
	ContactMessage     string     `dynamodbav:"contact_message"`
	ContactPhone       string     `dynamodbav:"contact_phone"`
	ContactEmail       string     `dynamodbav:"contact_email"`
	CoverageTiers      []tierItem `dynamodbav:"coverage_tiers"`
}

// DynamoDBAPI is the subset of the DynamoDB client used by DynamoSource.
type DynamoDBAPI interface {
	dynamodb.ScanAPIClient
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// DynamoSource reads the risk and pricing documents from DynamoDB.
//
// Table requirements:
//   - location_risk_factors: PK zip_code (string); the "default" row is the
//     fallback descriptor.
//   - quote_rules: PK id (string); the "current" item holds the rates.

type DynamoSource struct {
	ddb        DynamoDBAPI
	riskTable  string
	rulesTable string
}

var (
	_ interfaces.IRiskTableSource = (*DynamoSource)(nil)
	_ interfaces.IRateTableSource = (*DynamoSource)(nil)
)

func NewDynamoSource(ddb DynamoDBAPI, riskTable, rulesTable string) *DynamoSource {
	if riskTable == "" {
		riskTable = DefaultRiskFactorsTable
	}
	if rulesTable == "" {
		rulesTable = DefaultQuoteRulesTable
	}
	return &DynamoSource{ddb: ddb, riskTable: riskTable, rulesTable: rulesTable}
}

func (s *DynamoSource) LoadRiskTable(ctx context.Context) (entities.RiskTable, error) {
	var items []riskItem
	p := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(s.riskTable),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return entities.RiskTable{}, fmt.Errorf("%w: scan %s: %w", entities.ErrDataUnavailable, s.riskTable, err)
		}
		var page []riskItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return entities.RiskTable{}, fmt.Errorf("%w: decode %s: %w", entities.ErrDataUnavailable, s.riskTable, err)
		}
		items = append(items, page...)
	}
	return riskTableFromItems(items)
}

func (s *DynamoSource) LoadRateTable(ctx context.Context) (entities.RateTable, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.rulesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: currentRulesID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RateTable{}, fmt.Errorf("%w: get %s: %w", entities.ErrDataUnavailable, s.rulesTable, err)
	}
	if len(out.Item) == 0 {
		return entities.RateTable{}, fmt.Errorf("%w: %s has no %q item", entities.ErrDataUnavailable, s.rulesTable, currentRulesID)
	}

	var it rulesItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RateTable{}, fmt.Errorf("%w: decode %s: %w", entities.ErrDataUnavailable, s.rulesTable, err)
	}
	return fromRulesItem(it), nil
}

func riskTableFromItems(items []riskItem) (entities.RiskTable, error) {
	t := entities.RiskTable{ByZipCode: make(map[string]entities.RiskDescriptor, len(items))}
	hasDefault := false
	for _, it := range items {
		d := entities.RiskDescriptor{Risk: it.Risk, Multiplier: it.Multiplier, Description: it.Description}
		if it.ZipCode == defaultRiskKey {
			t.Default = d
			hasDefault = true
			continue
		}
		t.ByZipCode[it.ZipCode] = d
	}
	if !hasDefault {
		return entities.RiskTable{}, fmt.Errorf("%w: no %q risk row", entities.ErrInvalidData, defaultRiskKey)
	}
	return t, nil
}

func fromRulesItem(it rulesItem) entities.RateTable {
	tiers := make([]entities.CoverageTier, 0, len(it.CoverageTiers))
	for _, ti := range it.CoverageTiers {
		tiers = append(tiers, entities.CoverageTier{
			LowerBound: ti.LowerBound,
			UpperBound: ti.UpperBound,
			Multiplier: ti.Multiplier,
		})
	}
	entities.SortTiers(tiers)
	return entities.RateTable{
		BaseRatePerSqFt:    it.BaseRatePerSqFt,
		CoverageTiers:      tiers,
		HighValueThreshold: it.HighValueThreshold,
		ContactInfo: entities.ContactInfo{
			Message: it.ContactMessage,
			Phone:   it.ContactPhone,
			Email:   it.ContactEmail,
		},
	}
}
