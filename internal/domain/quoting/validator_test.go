package quoting

import (
	"math"
	"testing"

	"property_quote/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProperty() entities.Property {
	return entities.Property{
		Address: &entities.Address{
			Street:  "123 Main St",
			City:    "Austin",
			State:   "TX",
			ZipCode: "78701",
		},
		SquareFeet: 2000,
		Coverage:   300000,
	}
}

func TestValidator_Valid(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name string
		edit func(p *entities.Property)
	}{
		{name: "typical", edit: func(p *entities.Property) {}},
		{name: "min bounds", edit: func(p *entities.Property) { p.SquareFeet = 100; p.Coverage = 50000 }},
		{name: "max bounds", edit: func(p *entities.Property) { p.SquareFeet = 50000; p.Coverage = 2000000 }},
		{name: "fractional coverage", edit: func(p *entities.Property) { p.Coverage = 123456.78 }},
		{name: "short city", edit: func(p *entities.Property) { p.Address.City = "Ya" }},
		{name: "unicode street", edit: func(p *entities.Property) { p.Address.Street = "Größe" }},
		{name: "padded street counts raw length", edit: func(p *entities.Property) { p.Address.Street = "   12" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProperty()
			tc.edit(&p)
			res := v.Validate(p)
			assert.True(t, res.Valid)
			assert.Empty(t, res.Errors)
		})
	}
}

func TestValidator_SingleViolation(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name string
		edit func(p *entities.Property)
		want string
	}{
		{name: "missing address", edit: func(p *entities.Property) { p.Address = nil }, want: MsgAddressRequired},
		{name: "empty street", edit: func(p *entities.Property) { p.Address.Street = "" }, want: MsgStreetInvalid},
		{name: "short street", edit: func(p *entities.Property) { p.Address.Street = "1 A" }, want: MsgStreetInvalid},
		{name: "empty city", edit: func(p *entities.Property) { p.Address.City = "" }, want: MsgCityInvalid},
		{name: "one letter city", edit: func(p *entities.Property) { p.Address.City = "A" }, want: MsgCityInvalid},
		{name: "lowercase state", edit: func(p *entities.Property) { p.Address.State = "tx" }, want: MsgStateInvalid},
		{name: "long state", edit: func(p *entities.Property) { p.Address.State = "TEX" }, want: MsgStateInvalid},
		{name: "empty state", edit: func(p *entities.Property) { p.Address.State = "" }, want: MsgStateInvalid},
		{name: "short zip", edit: func(p *entities.Property) { p.Address.ZipCode = "7870" }, want: MsgZipCodeInvalid},
		{name: "signed zip", edit: func(p *entities.Property) { p.Address.ZipCode = "-7870" }, want: MsgZipCodeInvalid},
		{name: "zip plus four", edit: func(p *entities.Property) { p.Address.ZipCode = "78701-1234" }, want: MsgZipCodeInvalid},
		{name: "size too small", edit: func(p *entities.Property) { p.SquareFeet = 99 }, want: MsgSizeInvalid},
		{name: "size too large", edit: func(p *entities.Property) { p.SquareFeet = 50001 }, want: MsgSizeInvalid},
		{name: "fractional size", edit: func(p *entities.Property) { p.SquareFeet = 1500.5 }, want: MsgSizeInvalid},
		{name: "non numeric size", edit: func(p *entities.Property) { p.SquareFeet = math.NaN() }, want: MsgSizeInvalid},
		{name: "coverage too small", edit: func(p *entities.Property) { p.Coverage = 49999.99 }, want: MsgCoverageInvalid},
		{name: "coverage too large", edit: func(p *entities.Property) { p.Coverage = 2000000.01 }, want: MsgCoverageInvalid},
		{name: "non numeric coverage", edit: func(p *entities.Property) { p.Coverage = math.NaN() }, want: MsgCoverageInvalid},
		{name: "infinite coverage", edit: func(p *entities.Property) { p.Coverage = math.Inf(1) }, want: MsgCoverageInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProperty()
			tc.edit(&p)
			res := v.Validate(p)
			assert.False(t, res.Valid)
			assert.Equal(t, []string{tc.want}, res.Errors)
		})
	}
}

func TestValidator_CollectsAllInFixedOrder(t *testing.T) {
	v := NewValidator()

	t.Run("every address field", func(t *testing.T) {
		p := entities.Property{
			Address:    &entities.Address{Street: "x", City: "", State: "Texas", ZipCode: "abcde"},
			SquareFeet: 0,
			Coverage:   0,
		}
		res := v.Validate(p)
		require.False(t, res.Valid)
		assert.Equal(t, []string{
			MsgStreetInvalid,
			MsgCityInvalid,
			MsgStateInvalid,
			MsgZipCodeInvalid,
			MsgSizeInvalid,
			MsgCoverageInvalid,
		}, res.Errors)
	})

	t.Run("missing address skips sub-fields", func(t *testing.T) {
		res := v.Validate(entities.Property{})
		require.False(t, res.Valid)
		assert.Equal(t, []string{MsgAddressRequired, MsgSizeInvalid, MsgCoverageInvalid}, res.Errors)
	})
}
