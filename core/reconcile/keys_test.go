package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailKey(t *testing.T) {
	assert.Equal(t, EmailKey("Ann@Example.com "), EmailKey("ann@example.com"))
	assert.Equal(t, "", EmailKey("   "))
	assert.NotEqual(t, EmailKey("a@b.com"), EmailKey("b@b.com"))
}

func TestPhoneKey(t *testing.T) {
	assert.Equal(t, PhoneKey("(555) 123-4567"), PhoneKey("555-123-4567"))
	assert.Equal(t, PhoneKey("+1 555.123.4567"), PhoneKey("15551234567"))
	assert.NotEqual(t, PhoneKey("5551234567"), PhoneKey("5551234568"))
	assert.Equal(t, "", PhoneKey("n/a"))
}

func TestAddressKey(t *testing.T) {
	assert.Equal(t,
		AddressKey("5 Oak St", "Springfield", "11111"),
		AddressKey(" 5 OAK ST ", "SPRINGFIELD", "11111"),
	)

	// Abbreviation differences intentionally do not fold together.
	assert.NotEqual(t,
		AddressKey("5 Oak St", "Springfield", "11111"),
		AddressKey("5 Oak Street", "Springfield", "11111"),
	)

	assert.NotEqual(t,
		AddressKey("5 Oak St", "Springfield", "11111"),
		AddressKey("5 Oak St", "Springfield", "22222"),
	)

	assert.Equal(t, "", AddressKey("", "", ""))
	assert.Equal(t, "|springfield|", AddressKey("", "Springfield", ""))
}

func TestNumericKey(t *testing.T) {
	assert.Equal(t, "1001", NumericKey("1001"))
	assert.Equal(t, "1001", NumericKey(" 01001 "))
	assert.Equal(t, "", NumericKey("FTE-99"))
	assert.Equal(t, "", NumericKey(""))
	assert.NotEqual(t, NumericKey("1001"), NumericKey("1002"))
}
