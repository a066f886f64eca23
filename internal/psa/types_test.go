package psa

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContact_PreferredCommunication(t *testing.T) {
	contact := Contact{
		CommunicationItems: []CommunicationItem{
			{Type: &Reference{Name: "Direct Phone"}, Value: "555-0100"},
			{Type: &Reference{Name: "Email"}, Value: "first@acme.test"},
			{Type: &Reference{Name: "Mobile Phone"}, Value: "555-0199", DefaultFlag: true},
			{Type: nil, Value: "ignored"},
			{Type: &Reference{Name: "Email"}, Value: "second@acme.test"},
		},
	}

	phone, ok := contact.PreferredCommunication("phone")
	require.True(t, ok)
	assert.Equal(t, "555-0199", phone, "default-flagged item wins")

	email, ok := contact.PreferredCommunication("email")
	require.True(t, ok)
	assert.Equal(t, "first@acme.test", email, "first match when nothing is default")

	_, ok = contact.PreferredCommunication("fax")
	assert.False(t, ok)
}

func TestContact_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", (&Contact{FirstName: "Ada", LastName: "Lovelace"}).FullName())
	assert.Equal(t, "Ada", (&Contact{FirstName: "Ada"}).FullName())
	assert.Equal(t, "", (&Contact{}).FullName())
}

func TestCompany_SingleLineAddress(t *testing.T) {
	c := Company{AddressLine1: "1 Main St", City: "Springfield", Zip: "12345"}
	require.NotNil(t, c.SingleLineAddress())
	assert.Equal(t, "1 Main St, Springfield, 12345", *c.SingleLineAddress())

	assert.Nil(t, (&Company{}).SingleLineAddress())
}

func TestCompany_DecodeDefaults(t *testing.T) {
	var c Company
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"Acme"}`), &c))

	assert.NotNil(t, c.Types)
	assert.Empty(t, c.TypeNames())
	_, ok := c.DefaultContactID()
	assert.False(t, ok)

	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"types":[{"id":1,"name":"Client"},{"id":2,"name":"Partner"}],"defaultContact":{"id":77}}`), &c))
	assert.Equal(t, []string{"Client", "Partner"}, c.TypeNames())
	id, ok := c.DefaultContactID()
	assert.True(t, ok)
	assert.Equal(t, 77, id)
}

func TestAgreementAddition_SKU(t *testing.T) {
	assert.Equal(t, "", AgreementAddition{}.SKU())
	assert.Equal(t, "SKU-1", AgreementAddition{Product: &Product{Identifier: "SKU-1"}}.SKU())
}
