package entities

// Address is the insured property's location.
type Address struct {
	Street  string `json:"street" validate:"required,min=5"`
	City    string `json:"city" validate:"required,min=2"`
	State   string `json:"state" validate:"required,len=2,alpha,uppercase"`
	ZipCode string `json:"zipCode" validate:"required,len=5,number"`
}

// Property is the quote input.
//
// Address is a pointer so an absent address can be reported separately from
// its sub-fields. SquareFeet and Coverage are floats because the boundary may
// receive fractional or non-numeric values (mapped to NaN) which the
// validator must reject with the field's message.
//
// Field order matters: it is the order validation messages are reported in.
type Property struct {
	Address    *Address `json:"address" validate:"required"`
	SquareFeet float64  `json:"squareFeet" validate:"integral,min=100,max=50000"`
	Coverage   float64  `json:"coverage" validate:"finite,min=50000,max=2000000"`
}

const (
	MinSquareFeet = 100
	MaxSquareFeet = 50000
	MinCoverage   = 50000
	MaxCoverage   = 2000000
)
