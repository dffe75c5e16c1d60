package entity

import (
	"maps"
	"slices"

	domainerrors "agency/internal/domain/errors"
)

type agencyInput struct {
	Name string `label:"agency name" validate:"required,max=30"`
}

// Agency is the aggregate root for an inventory of properties keyed by
// property ID. It is not safe for concurrent use.
//
// Queries returning a slice order it by property ID and return an empty,
// non-nil container when nothing matches.
//
// The zero value has no name; build one with NewAgency.
type Agency struct {
	name       string
	properties map[string]*Property
}

// NewAgency creates an empty agency. The name must be 1 to 30 characters.
func NewAgency(name string) (*Agency, error) {
	if err := validateInput(agencyInput{Name: name}); err != nil {
		return nil, err
	}

	return &Agency{
		name:       name,
		properties: make(map[string]*Property),
	}, nil
}

func (a *Agency) Name() string {
	return a.name
}

// Len returns the number of properties held.
func (a *Agency) Len() int {
	return len(a.properties)
}

// AddProperty stores property under its ID, replacing any property already
// registered with the same ID.
func (a *Agency) AddProperty(property *Property) error {
	if property == nil {
		return domainerrors.NewInvalidValueError("property", nil)
	}

	if a.properties == nil {
		a.properties = make(map[string]*Property)
	}
	a.properties[property.ID()] = property

	return nil
}

// RemoveProperty drops the property with the given ID. Unknown IDs are ignored.
func (a *Agency) RemoveProperty(propertyID string) {
	delete(a.properties, propertyID)
}

// Property looks up a property by ID.
func (a *Agency) Property(propertyID string) (*Property, bool) {
	property, ok := a.properties[propertyID]

	return property, ok
}

// Properties returns every held property.
func (a *Agency) Properties() []*Property {
	return a.filter(func(*Property) bool { return true })
}

// TotalPropertyValues sums the current price of every property. It is 0 for
// an empty agency.
func (a *Agency) TotalPropertyValues() float64 {
	var total float64
	for _, property := range a.sorted() {
		total += property.PriceUSD()
	}

	return total
}

// PropertiesWithPools returns the properties that have a swimming pool.
func (a *Agency) PropertiesWithPools() []*Property {
	return a.filter(func(p *Property) bool {
		return p.HasSwimmingPool()
	})
}

// PropertiesBetween returns the properties priced within [minUSD, maxUSD].
func (a *Agency) PropertiesBetween(minUSD, maxUSD float64) []*Property {
	return a.filter(func(p *Property) bool {
		return p.PriceUSD() >= minUSD && p.PriceUSD() <= maxUSD
	})
}

// PropertiesOn returns the addresses of properties whose street name equals
// streetName exactly. The comparison is case-sensitive.
func (a *Agency) PropertiesOn(streetName string) []Address {
	addresses := make([]Address, 0)
	for _, property := range a.sorted() {
		if property.Address().StreetName() == streetName {
			addresses = append(addresses, property.Address())
		}
	}

	return addresses
}

// PropertiesWithBedrooms returns the properties with a bedroom count within
// [minBedrooms, maxBedrooms], keyed by property ID.
func (a *Agency) PropertiesWithBedrooms(minBedrooms, maxBedrooms int) map[string]*Property {
	matches := make(map[string]*Property)
	for id, property := range a.properties {
		if property.Bedrooms() >= minBedrooms && property.Bedrooms() <= maxBedrooms {
			matches[id] = property
		}
	}

	return matches
}

// PropertiesOfType returns the Summary of every property whose type equals
// propertyType exactly. The comparison is case-sensitive even though
// NewProperty accepts any casing of a known type.
func (a *Agency) PropertiesOfType(propertyType string) []string {
	summaries := make([]string, 0)
	for _, property := range a.sorted() {
		if property.Type() == propertyType {
			summaries = append(summaries, property.Summary())
		}
	}

	return summaries
}

func (a *Agency) filter(keep func(*Property) bool) []*Property {
	matches := make([]*Property, 0)
	for _, property := range a.sorted() {
		if keep(property) {
			matches = append(matches, property)
		}
	}

	return matches
}

func (a *Agency) sorted() []*Property {
	properties := make([]*Property, 0, len(a.properties))
	for _, id := range slices.Sorted(maps.Keys(a.properties)) {
		properties = append(properties, a.properties[id])
	}

	return properties
}
