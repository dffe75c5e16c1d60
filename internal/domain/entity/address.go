// Package entity contains the core business objects of the project.
package entity

import "fmt"

// AddressInput carries the raw fields of an address before validation.
// UnitNumber is optional; leave it empty when the address has no unit.
type AddressInput struct {
	UnitNumber   string `label:"unit number" validate:"omitempty,max=4"`
	StreetNumber int    `label:"street number" validate:"min=0,max=999999"`
	StreetName   string `label:"street name" validate:"required,max=20"`
	PostalCode   string `label:"postal code" validate:"required,len=5|len=6"`
	City         string `label:"city" validate:"required,max=30"`
}

// Address is an immutable postal address. The zero value is not a valid
// address; build one with NewAddress.
type Address struct {
	unitNumber   string
	streetNumber int
	streetName   string
	postalCode   string
	city         string
}

// NewAddress validates input and returns the corresponding Address.
func NewAddress(input AddressInput) (Address, error) {
	if err := validateInput(input); err != nil {
		return Address{}, err
	}

	return Address{
		unitNumber:   input.UnitNumber,
		streetNumber: input.StreetNumber,
		streetName:   input.StreetName,
		postalCode:   input.PostalCode,
		city:         input.City,
	}, nil
}

// UnitNumber returns the unit designator, or "" when the address has none.
func (a Address) UnitNumber() string {
	return a.unitNumber
}

// HasUnit reports whether the address carries a unit designator.
func (a Address) HasUnit() bool {
	return a.unitNumber != ""
}

func (a Address) StreetNumber() int {
	return a.streetNumber
}

func (a Address) StreetName() string {
	return a.streetName
}

func (a Address) PostalCode() string {
	return a.postalCode
}

func (a Address) City() string {
	return a.city
}

// String renders the address as "<unit> at <number> <street> <postal code> in <city>".
// The "<unit> at " prefix is left out when there is no unit.
func (a Address) String() string {
	location := fmt.Sprintf("%d %s %s in %s", a.streetNumber, a.streetName, a.postalCode, a.city)
	if !a.HasUnit() {
		return location
	}

	return a.unitNumber + " at " + location
}
