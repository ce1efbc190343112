package routes

import (
	"property_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI      = "/api"
	PathHealth   = "/health"
	PathQuote    = "/quote"
	PathQuotePDF = "/quote/pdf"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	rg.POST(PathQuote, quoteHandler.CreateQuote)
	rg.POST(PathQuotePDF, quoteHandler.DownloadQuotePDF)
}
