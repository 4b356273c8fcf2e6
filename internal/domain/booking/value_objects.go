package booking

import (
	"errors"
	"strings"
)

var (
	ErrInvalidNights = errors.New("nights must be a positive integer")
	ErrBlankGuest    = errors.New("guest name, phone, email, and document number are all required")
)

// Nights is the length of a stay, always at least one.
type Nights struct {
	value int
}

func NewNights(n int) (Nights, error) {
	if n < 1 {
		return Nights{}, ErrInvalidNights
	}
	return Nights{value: n}, nil
}

func (n Nights) Value() int {
	return n.value
}

// Guest is the person the stay is booked for. All four fields are required
// at booking time; records loaded from storage bypass the check via
// ReconstructGuest so incomplete legacy rows still load.
type Guest struct {
	name           string
	phone          string
	email          string
	documentNumber string
}

func NewGuest(name, phone, email, documentNumber string) (Guest, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)
	documentNumber = strings.TrimSpace(documentNumber)

	if name == "" || phone == "" || email == "" || documentNumber == "" {
		return Guest{}, ErrBlankGuest
	}

	return Guest{
		name:           name,
		phone:          phone,
		email:          email,
		documentNumber: documentNumber,
	}, nil
}

func ReconstructGuest(name, phone, email, documentNumber string) Guest {
	return Guest{
		name:           name,
		phone:          phone,
		email:          email,
		documentNumber: documentNumber,
	}
}

func (g Guest) Name() string           { return g.name }
func (g Guest) Phone() string          { return g.phone }
func (g Guest) Email() string          { return g.email }
func (g Guest) DocumentNumber() string { return g.documentNumber }

// Complete reports whether every guest field is present, the precondition
// for composing a receipt.
func (g Guest) Complete() bool {
	return g.name != "" && g.phone != "" && g.email != "" && g.documentNumber != ""
}
