package handlers

import (
	"errors"
	"fmt"
	"net/http"
	request "property_quote/internal/adapter/http/dto/request"
	response "property_quote/internal/adapter/http/dto/response"
	"property_quote/internal/domain/entities"
	"property_quote/internal/usecase"
	"property_quote/internal/usecase/interfaces"
	"property_quote/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errValidationFailed    = pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusBadRequest)
	errQuoteUnavailable    = pkg.NewDomainErrorSimple("QUOTE_UNAVAILABLE", "Unable to process quote", http.StatusInternalServerError)
)

// QuoteHandler serves instant quotes as JSON or as a PDF document.

type QuoteHandler struct {
	usecase  usecase.IQuoteUseCase
	renderer interfaces.IQuoteRenderer
	log      *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, renderer interfaces.IQuoteRenderer, log *zap.Logger) *QuoteHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteHandler{usecase: uc, renderer: renderer, log: log}
}

// CreateQuote godoc
// @Summary      Calculate an instant quote
// @Description  Validates the property, looks up the zip code risk and prices it against the coverage tiers.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuoteRequest  true  "Property to quote"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /api/quote [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	quote, ok := h.quote(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// DownloadQuotePDF godoc
// @Summary      Download a quote as PDF
// @Description  Same input and error mapping as POST /api/quote; high-value quotes include the contact card.
// @Tags         quotes
// @Accept       json
// @Produce      application/pdf
// @Param        payload  body      request.QuoteRequest  true  "Property to quote"
// @Success      200      {file}    file
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /api/quote/pdf [post]
func (h *QuoteHandler) DownloadQuotePDF(c *gin.Context) {
	quote, ok := h.quote(c)
	if !ok {
		return
	}

	doc, err := h.renderer.Render(quote)
	if err != nil {
		h.log.Error("[quote][handler] pdf render failed", zap.String("quote_id", quote.ID), zap.Error(err))
		appErr := pkg.NewDomainError("QUOTE_RENDER_FAILED", "Unable to render quote document", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="quote-%s.pdf"`, quote.ID))
	c.Data(http.StatusOK, h.renderer.ContentType(), doc)
}

func (h *QuoteHandler) quote(c *gin.Context) (entities.Quote, bool) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Debug("[quote][handler] invalid payload", zap.Error(err))
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return entities.Quote{}, false
	}

	quote, err := h.usecase.GetQuote(c.Request.Context(), payload.ToProperty())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.Quote{}, false
	}
	return quote, true
}

func mapQuoteError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return errValidationFailed.WithDetails(vErr.Errors...)
	case errors.Is(err, usecase.ErrQuoteUnavailable):
		return errQuoteUnavailable.WithDetails(usecase.QuoteUnavailableMessage)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
