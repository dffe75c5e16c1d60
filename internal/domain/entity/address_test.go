package entity

import (
	"strings"
	"testing"

	domainerrors "agency/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddressInput() AddressInput {
	return AddressInput{
		UnitNumber:   "1a",
		StreetNumber: 777,
		StreetName:   "56th avenue",
		PostalCode:   "v7n2m8",
		City:         "surrey",
	}
}

func TestNewAddress_Success(t *testing.T) {
	address, err := NewAddress(validAddressInput())
	require.NoError(t, err)

	assert.Equal(t, "1a", address.UnitNumber())
	assert.True(t, address.HasUnit())
	assert.Equal(t, 777, address.StreetNumber())
	assert.Equal(t, "56th avenue", address.StreetName())
	assert.Equal(t, "v7n2m8", address.PostalCode())
	assert.Equal(t, "surrey", address.City())
	assert.Equal(t, "1a at 777 56th avenue v7n2m8 in surrey", address.String())
}

func TestNewAddress_WithoutUnit(t *testing.T) {
	input := validAddressInput()
	input.UnitNumber = ""

	address, err := NewAddress(input)
	require.NoError(t, err)

	assert.False(t, address.HasUnit())
	assert.Equal(t, "777 56th avenue v7n2m8 in surrey", address.String())
}

func TestNewAddress_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AddressInput)
	}{
		{name: "four character unit", mutate: func(in *AddressInput) { in.UnitNumber = "8785" }},
		{name: "street number zero", mutate: func(in *AddressInput) { in.StreetNumber = 0 }},
		{name: "street number max", mutate: func(in *AddressInput) { in.StreetNumber = 999999 }},
		{name: "twenty character street", mutate: func(in *AddressInput) { in.StreetName = strings.Repeat("s", 20) }},
		{name: "five character postal code", mutate: func(in *AddressInput) { in.PostalCode = "90210" }},
		{name: "thirty character city", mutate: func(in *AddressInput) { in.City = strings.Repeat("c", 30) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validAddressInput()
			tt.mutate(&input)

			_, err := NewAddress(input)
			assert.NoError(t, err)
		})
	}
}

func TestNewAddress_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*AddressInput)
		wantKind  error
		wantField string
	}{
		{
			name:      "unit too long",
			mutate:    func(in *AddressInput) { in.UnitNumber = "12345" },
			wantKind:  domainerrors.ErrInvalidValue,
			wantField: "unit number",
		},
		{
			name:      "negative street number",
			mutate:    func(in *AddressInput) { in.StreetNumber = -1 },
			wantKind:  domainerrors.ErrInvalidValue,
			wantField: "street number",
		},
		{
			name:      "street number too large",
			mutate:    func(in *AddressInput) { in.StreetNumber = 1000000 },
			wantKind:  domainerrors.ErrInvalidValue,
			wantField: "street number",
		},
		{
			name:      "missing street name",
			mutate:    func(in *AddressInput) { in.StreetName = "" },
			wantKind:  domainerrors.ErrMissingValue,
			wantField: "street name",
		},
		{
			name:      "street name of 21 characters",
			mutate:    func(in *AddressInput) { in.StreetName = strings.Repeat("s", 21) },
			wantKind:  domainerrors.ErrInvalidValue,
			wantField: "street name",
		},
		{
			name:      "missing postal code",
			mutate:    func(in *AddressInput) { in.PostalCode = "" },
			wantKind:  domainerrors.ErrMissingValue,
			wantField: "postal code",
		},
		{
			name:      "postal code of 4 characters",
			mutate:    func(in *AddressInput) { in.PostalCode = "1234" },
			wantKind:  domainerrors.ErrInvalidValue,
			wantField: "postal code",
		},
		{
			name:      "postal code of 7 characters",
			mutate:    func(in *AddressInput) { in.PostalCode = "v7n 2m8" },
			wantKind:  domainerrors.ErrInvalidValue,
			wantField: "postal code",
		},
		{
			name:      "missing city",
			mutate:    func(in *AddressInput) { in.City = "" },
			wantKind:  domainerrors.ErrMissingValue,
			wantField: "city",
		},
		{
			name:      "city too long",
			mutate:    func(in *AddressInput) { in.City = strings.Repeat("c", 31) },
			wantKind:  domainerrors.ErrInvalidValue,
			wantField: "city",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validAddressInput()
			tt.mutate(&input)

			address, err := NewAddress(input)
			require.Error(t, err)
			assert.Equal(t, Address{}, address)
			assert.ErrorIs(t, err, tt.wantKind)

			var fieldErr *domainerrors.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field())
		})
	}
}
