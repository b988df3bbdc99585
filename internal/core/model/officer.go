package model

// Matches the registry's officer list item (GET /company/{n}/officers).
type OfficerAppointmentItem struct {
	Name        string       `json:"name"`
	OfficerRole string       `json:"officer_role,omitempty"`
	AppointedOn string       `json:"appointed_on,omitempty"`
	ResignedOn  string       `json:"resigned_on,omitempty"`
	Links       OfficerLinks `json:"links"`
}

type OfficerLinks struct {
	Officer OfficerLink `json:"officer"`
}

type OfficerLink struct {
	// Appointments has the shape /officers/{officer_id}/appointments.
	Appointments string `json:"appointments" validate:"required,startswith=/officers/,endswith=/appointments"`
}

// Matches the registry's appointment list item (GET /officers/{id}/appointments).
type AppointmentItem struct {
	Name        string      `json:"name,omitempty"`
	OfficerRole string      `json:"officer_role,omitempty"`
	AppointedOn string      `json:"appointed_on,omitempty"`
	ResignedOn  string      `json:"resigned_on,omitempty"`
	AppointedTo AppointedTo `json:"appointed_to"`
}

type AppointedTo struct {
	CompanyNumber string `json:"company_number" validate:"required"`
	CompanyName   string `json:"company_name,omitempty"`
	CompanyStatus string `json:"company_status,omitempty"`
}

// OfficerSearchItem is a single hit from /search/officers.
type OfficerSearchItem struct {
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	AppointmentCount int    `json:"appointment_count,omitempty"`
	Links            struct {
		Self string `json:"self"`
	} `json:"links"`
}

// Page is the registry's list envelope. Only the first page is ever read.
type Page[T any] struct {
	Items        []T `json:"items" validate:"dive"`
	ItemsPerPage int `json:"items_per_page,omitempty"`
	StartIndex   int `json:"start_index,omitempty"`
	TotalResults int `json:"total_results,omitempty"`
}
