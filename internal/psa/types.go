package psa

import (
	"encoding/json"
	"strings"
)

// Credentials identify an API member on a ConnectWise site
type Credentials struct {
	CompanyID  string
	PublicKey  string
	PrivateKey string
	SiteURL    string
	ClientID   string
}

// ConnectionResult is the outcome of TestConnection
type ConnectionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Reference is the {id, name} shape the PSA uses for linked records
type Reference struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CompanyType is a company classification defined in the PSA
type CompanyType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Company is a PSA company record
type Company struct {
	ID             int         `json:"id"`
	Identifier     string      `json:"identifier"`
	Name           string      `json:"name"`
	Status         *Reference  `json:"status,omitempty"`
	Types          []Reference `json:"types"`
	AddressLine1   string      `json:"addressLine1,omitempty"`
	City           string      `json:"city,omitempty"`
	State          string      `json:"state,omitempty"`
	Zip            string      `json:"zip,omitempty"`
	PhoneNumber    string      `json:"phoneNumber,omitempty"`
	Website        string      `json:"website,omitempty"`
	DefaultContact *Reference  `json:"defaultContact,omitempty"`
}

// UnmarshalJSON decodes a company, turning a missing types array into an empty one
func (c *Company) UnmarshalJSON(b []byte) error {
	type alias Company
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if a.Types == nil {
		a.Types = []Reference{}
	}
	*c = Company(a)
	return nil
}

// TypeNames returns the names of the company's types in PSA order
func (c *Company) TypeNames() []string {
	names := make([]string, 0, len(c.Types))
	for _, t := range c.Types {
		names = append(names, t.Name)
	}
	return names
}

// DefaultContactID returns the id of the company's default contact, if it has one
func (c *Company) DefaultContactID() (int, bool) {
	if c.DefaultContact == nil || c.DefaultContact.ID == 0 {
		return 0, false
	}
	return c.DefaultContact.ID, true
}

// SingleLineAddress joins the non-empty address parts with ", ". It returns nil when all parts are empty.
func (c *Company) SingleLineAddress() *string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.AddressLine1, c.City, c.State, c.Zip} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	s := strings.Join(parts, ", ")
	return &s
}

// CommunicationItem is one email address, phone number or similar on a contact
type CommunicationItem struct {
	Type        *Reference `json:"type,omitempty"`
	Value       string     `json:"value"`
	DefaultFlag bool       `json:"defaultFlag"`
}

// TypeName returns the item's type name or "" when the type is missing
func (i CommunicationItem) TypeName() string {
	if i.Type == nil {
		return ""
	}
	return i.Type.Name
}

// Contact is a PSA contact record
type Contact struct {
	ID                 int                 `json:"id"`
	FirstName          string              `json:"firstName"`
	LastName           string              `json:"lastName"`
	CommunicationItems []CommunicationItem `json:"communicationItems"`
}

// UnmarshalJSON decodes a contact, turning missing communication items into an empty list
func (c *Contact) UnmarshalJSON(b []byte) error {
	type alias Contact
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if a.CommunicationItems == nil {
		a.CommunicationItems = []CommunicationItem{}
	}
	*c = Contact(a)
	return nil
}

// FullName is "first last" with surrounding whitespace removed
func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// PreferredCommunication returns the value of the first default item whose type name
// contains kind (case-insensitive), or the first such item when none is flagged default.
func (c *Contact) PreferredCommunication(kind string) (string, bool) {
	kind = strings.ToLower(kind)
	var fallback *CommunicationItem
	for i := range c.CommunicationItems {
		item := &c.CommunicationItems[i]
		if !strings.Contains(strings.ToLower(item.TypeName()), kind) {
			continue
		}
		if item.DefaultFlag {
			return item.Value, true
		}
		if fallback == nil {
			fallback = item
		}
	}
	if fallback == nil {
		return "", false
	}
	return fallback.Value, true
}

// Agreement is a PSA service agreement
type Agreement struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Company   *AgreementCompany `json:"company,omitempty"`
	Type      *Reference        `json:"type,omitempty"`
	Cancelled bool              `json:"cancelled"`
}

// AgreementCompany is the company reference embedded in an agreement
type AgreementCompany struct {
	ID         int    `json:"id"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// Product is the catalog item referenced by an agreement addition
type Product struct {
	ID          int    `json:"id"`
	Identifier  string `json:"identifier"`
	Description string `json:"description"`
}

// AgreementAddition is one line item on an agreement
type AgreementAddition struct {
	ID             int      `json:"id"`
	Product        *Product `json:"product,omitempty"`
	Quantity       float64  `json:"quantity"`
	BillableOption string   `json:"billableOption"`
}

// SKU returns the product identifier or "" when the addition has no product
func (a AgreementAddition) SKU() string {
	if a.Product == nil {
		return ""
	}
	return a.Product.Identifier
}

// CompanyPage is one page of companies plus the total across all pages
type CompanyPage struct {
	Items      []Company
	TotalCount int
}

// AdditionFailure records an agreement whose additions could not be fetched
type AdditionFailure struct {
	AgreementID int
	Err         error
}

// ProductSKUs is the de-duplicated product identifier set across a company's active agreements
type ProductSKUs struct {
	SKUs       []string
	Agreements int
	Failures   []AdditionFailure
}

type countResponse struct {
	Count int `json:"count"`
}
