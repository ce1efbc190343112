package usecase

import (
	"context"
	"errors"
	"fmt"
	"property_quote/internal/domain/entities"
	"property_quote/internal/domain/quoting"
	"property_quote/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuoteUnavailableMessage is the only detail a caller sees when pricing fails
// for reasons other than its input.
const QuoteUnavailableMessage = "Failed to calculate quote. Please try again later."

var ErrQuoteUnavailable = errors.New("quote unavailable")

// ValidationError carries the ordered field messages for a rejected property.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid property: " + strings.Join(e.Errors, "; ")
}

// IQuoteUseCase prices a property.
//
// Flow: validate -> (risk lookup | rate table) -> price -> attach contact
// info for high-value quotes. Validation failures return *ValidationError
// before any data access; data failures return ErrQuoteUnavailable.

type IQuoteUseCase interface {
	GetQuote(ctx context.Context, property entities.Property) (entities.Quote, error)
}

type QuoteUseCase struct {
	validator *quoting.Validator
	risks     interfaces.IRiskRepository
	rates     interfaces.IRateTableRepository
	log       *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(risks interfaces.IRiskRepository, rates interfaces.IRateTableRepository, log *zap.Logger) *QuoteUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteUseCase{
		validator: quoting.NewValidator(),
		risks:     risks,
		rates:     rates,
		log:       log,
	}
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, property entities.Property) (entities.Quote, error) {
	if res := u.validator.Validate(property); !res.Valid {
		u.log.Debug("[quote][usecase] validation failed", zap.Strings("errors", res.Errors))
		return entities.Quote{}, &ValidationError{Errors: res.Errors}
	}

	var (
		risk  entities.RiskDescriptor
		rates entities.RateTable
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		risk, err = u.risks.RiskFor(gctx, property.Address.ZipCode)
		if err != nil {
			return fmt.Errorf("risk lookup: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rates, err = u.rates.Rates(gctx)
		if err != nil {
			return fmt.Errorf("rate table: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		u.log.Error("[quote][usecase] failed calculating quote",
			zap.String("zip_code", property.Address.ZipCode),
			zap.Error(err),
		)
		return entities.Quote{}, ErrQuoteUnavailable
	}

	q := quoting.Price(property, risk, rates)
	q.ID = uuid.NewString()
	if q.IsHighValue {
		contact := rates.ContactInfo
		q.ContactInfo = &contact
	}

	u.log.Info("[quote][usecase] quote calculated",
		zap.String("quote_id", q.ID),
		zap.String("zip_code", property.Address.ZipCode),
		zap.Float64("amount", q.Amount),
		zap.String("status", string(q.Status)),
	)
	return q, nil
}
