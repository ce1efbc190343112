package interfaces

import "property_quote/internal/domain/entities"

// IQuoteRenderer turns a priced quote into a downloadable document.
type IQuoteRenderer interface {
	Render(q entities.Quote) ([]byte, error)
	ContentType() string
}
