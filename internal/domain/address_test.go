package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestNewAddress_Validation(t *testing.T) {
	cases := []struct {
		name   string
		street string
		number int
		zip    string
		city   string
		want   error
	}{
		{name: "empty street", street: "", number: 1, zip: "12345", city: "Springfield", want: domain.ErrAddressStreetRequired},
		{name: "empty city", street: "Main Street", number: 1, zip: "12345", city: "", want: domain.ErrAddressCityRequired},
		{name: "empty zip", street: "Main Street", number: 1, zip: "", city: "Springfield", want: domain.ErrAddressZipRequired},
		{name: "zero number", street: "Main Street", number: 0, zip: "12345", city: "Springfield", want: domain.ErrAddressNumberInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewAddress(tc.street, tc.number, tc.zip, tc.city)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNewAddress_Ok(t *testing.T) {
	addr, err := domain.NewAddress("Main Street", 100, "12345", "Springfield")
	if err != nil {
		t.Fatalf("expected valid address, got %v", err)
	}
	if addr.Street() != "Main Street" || addr.Number() != 100 || addr.Zip() != "12345" || addr.City() != "Springfield" {
		t.Fatalf("unexpected address fields: %+v", addr)
	}
}
