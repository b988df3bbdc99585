package model

import (
	"encoding/json"
	"fmt"
)

// Record is a registry JSON object decoded without a schema.
type Record map[string]interface{}

type Address struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	Locality     string `json:"locality,omitempty"`
	Region       string `json:"region,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

// CompanyProfile holds the commonly used profile fields. Raw keeps the full
// record as it came off the wire.
type CompanyProfile struct {
	CompanyNumber           string   `json:"company_number" validate:"required"`
	CompanyName             string   `json:"company_name,omitempty"`
	CompanyStatus           string   `json:"company_status,omitempty"`
	Type                    string   `json:"type,omitempty"`
	DateOfCreation          string   `json:"date_of_creation,omitempty"`
	Jurisdiction            string   `json:"jurisdiction,omitempty"`
	RegisteredOfficeAddress *Address `json:"registered_office_address,omitempty"`

	Raw Record `json:"-"`
}

func (p *CompanyProfile) UnmarshalJSON(data []byte) error {
	type plain CompanyProfile
	var fields plain
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var raw Record
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode profile record: %w", err)
	}
	*p = CompanyProfile(fields)
	p.Raw = raw
	return nil
}
