package entity

import (
	"fmt"
	"strings"

	domainerrors "agency/internal/domain/errors"
	"agency/internal/util"
)

// PropertyInput carries the raw fields of a listing before validation.
// Fields are validated in declaration order and the first failure is reported.
type PropertyInput struct {
	PriceUSD        float64  `label:"price" validate:"gt=0"`
	Bedrooms        int      `label:"number of bedrooms" validate:"min=1,max=20"`
	Type            string   `label:"property type" validate:"required,property_type"`
	ID              string   `label:"property id" validate:"required,max=6"`
	Address         *Address `label:"address" validate:"required"`
	HasSwimmingPool bool     `label:"swimming pool"`
	Name            string   `label:"property name"`
}

// Property is a listing held by an agency. Everything except the price and the
// display name is fixed at construction.
type Property struct {
	id              string
	priceUSD        float64
	address         Address
	bedrooms        int
	hasSwimmingPool bool
	propertyType    string
	name            string
}

// NewProperty validates input and returns the corresponding Property.
func NewProperty(input PropertyInput) (*Property, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	return &Property{
		id:              input.ID,
		priceUSD:        input.PriceUSD,
		address:         *input.Address,
		bedrooms:        input.Bedrooms,
		hasSwimmingPool: input.HasSwimmingPool,
		propertyType:    input.Type,
		name:            input.Name,
	}, nil
}

// ID returns the identifier that keys the property inside an agency.
func (p *Property) ID() string {
	return p.id
}

// PriceUSD returns the current asking price.
func (p *Property) PriceUSD() float64 {
	return p.priceUSD
}

// SetPriceUSD updates the asking price. The price must stay strictly positive.
func (p *Property) SetPriceUSD(price float64) error {
	if !(price > 0) {
		return domainerrors.NewInvalidValueError("price", price)
	}

	p.priceUSD = price

	return nil
}

func (p *Property) Address() Address {
	return p.address
}

func (p *Property) Bedrooms() int {
	return p.bedrooms
}

func (p *Property) HasSwimmingPool() bool {
	return p.hasSwimmingPool
}

// Type returns the property type exactly as it was supplied, casing included.
func (p *Property) Type() string {
	return p.propertyType
}

// Name returns the optional display name.
func (p *Property) Name() string {
	return p.name
}

// SetName replaces the display name.
func (p *Property) SetName(name string) {
	p.name = name
}

// Summary renders the listing as two lines:
//
//	Type: RESIDENCE
//	abc123: 1a at 777 56th avenue v7n2m8 in surrey (2 bedrooms): $499000.0.
func (p *Property) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Type: %s\n", strings.ToUpper(p.propertyType))
	fmt.Fprintf(&sb, "%s: %s (%d %s", p.id, p.address, p.bedrooms, util.Pluralize(p.bedrooms, "bedroom"))
	if p.hasSwimmingPool {
		sb.WriteString(" plus pool")
	}
	fmt.Fprintf(&sb, "): $%s.", util.FormatPrice(p.priceUSD))

	return sb.String()
}
