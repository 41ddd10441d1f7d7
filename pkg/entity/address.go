package entity

// AddressType classifies an address.
type AddressType int

const (
	Shipping AddressType = 1
	Billing  AddressType = 2
)

// Valid reports whether t is a declared address type.
func (t AddressType) Valid() bool {
	switch t {
	case Shipping, Billing:
		return true
	}
	return false
}

func (t AddressType) String() string {
	switch t {
	case Shipping:
		return "Shipping"
	case Billing:
		return "Billing"
	}
	return "Unknown"
}

// Address is a postal address.
type Address struct {
	Line       *string
	Line2      *string
	Type       AddressType
	City       *string
	PostalCode *string
	State      *string
	Country    *string
}

// NewAddress creates an address without a second line.
func NewAddress(line string, addressType AddressType, city, postalCode, state, country string) *Address {
	return &Address{
		Line:       &line,
		Type:       addressType,
		City:       &city,
		PostalCode: &postalCode,
		State:      &state,
		Country:    &country,
	}
}

// String returns a pointer to s, for populating nullable attributes.
func String(s string) *string {
	return &s
}
