package seed

// Inventory is the YAML document describing an agency and its listings.
type Inventory struct {
	Agency     AgencyDTO     `yaml:"agency"`
	Properties []PropertyDTO `yaml:"properties"`
}

type AgencyDTO struct {
	Name string `yaml:"name"`
}

type PropertyDTO struct {
	ID           string     `yaml:"id"`
	Name         string     `yaml:"name"`
	PriceUSD     float64    `yaml:"priceUsd"`
	Bedrooms     int        `yaml:"bedrooms"`
	SwimmingPool bool       `yaml:"swimmingPool"`
	Type         string     `yaml:"type"`
	Address      AddressDTO `yaml:"address"`
}

type AddressDTO struct {
	Unit         string `yaml:"unit"`
	StreetNumber int    `yaml:"streetNumber"`
	StreetName   string `yaml:"streetName"`
	PostalCode   string `yaml:"postalCode"`
	City         string `yaml:"city"`
}
