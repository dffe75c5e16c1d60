package entity

import "strings"

// PropertyType represents the kind of use a property is zoned for.
type PropertyType string

const (
	// PropertyTypeResidence indicates a dwelling.
	PropertyTypeResidence PropertyType = "residence"
	// PropertyTypeCommercial indicates office or business premises.
	PropertyTypeCommercial PropertyType = "commercial"
	// PropertyTypeRetail indicates a storefront.
	PropertyTypeRetail PropertyType = "retail"
)

// String returns the string representation of the PropertyType.
func (p PropertyType) String() string {
	return string(p)
}

// IsValid checks if the PropertyType names a known type, ignoring case.
func (p PropertyType) IsValid() bool {
	for _, known := range []PropertyType{PropertyTypeResidence, PropertyTypeCommercial, PropertyTypeRetail} {
		if strings.EqualFold(string(p), string(known)) {
			return true
		}
	}

	return false
}
