package seed

import (
	"agency/internal/domain/entity"
	"agency/internal/errors"
)

// MapInventory builds an Agency from a decoded inventory. A non-empty
// agencyName replaces the name declared in the document. Listings sharing an
// ID replace earlier ones, as with Agency.AddProperty.
func MapInventory(inv Inventory, agencyName string) (*entity.Agency, error) {
	name := inv.Agency.Name
	if agencyName != "" {
		name = agencyName
	}

	agency, err := entity.NewAgency(name)
	if err != nil {
		return nil, errors.Wrap(err, "agency")
	}

	for i, dto := range inv.Properties {
		property, err := mapProperty(dto)
		if err != nil {
			return nil, errors.Wrapf(err, "properties[%d] (id %q)", i, dto.ID)
		}

		if err := agency.AddProperty(property); err != nil {
			return nil, errors.Wrapf(err, "properties[%d] (id %q)", i, dto.ID)
		}
	}

	return agency, nil
}

func mapProperty(dto PropertyDTO) (*entity.Property, error) {
	address, err := entity.NewAddress(entity.AddressInput{
		UnitNumber:   dto.Address.Unit,
		StreetNumber: dto.Address.StreetNumber,
		StreetName:   dto.Address.StreetName,
		PostalCode:   dto.Address.PostalCode,
		City:         dto.Address.City,
	})
	if err != nil {
		return nil, errors.Wrap(err, "address")
	}

	return entity.NewProperty(entity.PropertyInput{
		PriceUSD:        dto.PriceUSD,
		Bedrooms:        dto.Bedrooms,
		Type:            dto.Type,
		ID:              dto.ID,
		Address:         &address,
		HasSwimmingPool: dto.SwimmingPool,
		Name:            dto.Name,
	})
}
