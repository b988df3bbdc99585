package core

import (
	"context"
	"fmt"
	"net/url"

	"github.com/agenthands/thread/internal/core/model"
)

type MockRegistry struct {
	Officers     map[string][]model.OfficerAppointmentItem
	Appointments map[string][]model.AppointmentItem
	Profiles     map[string]*model.CompanyProfile

	// Errs fails the call whose key ("officers:N", "appointments:ID", "profile:N") matches.
	Errs map[string]error

	Calls []string
}

func (m *MockRegistry) ListOfficers(ctx context.Context, companyNumber string, params url.Values) ([]model.OfficerAppointmentItem, error) {
	key := "officers:" + companyNumber
	m.Calls = append(m.Calls, key)
	if err := m.Errs[key]; err != nil {
		return nil, err
	}
	return m.Officers[companyNumber], nil
}

func (m *MockRegistry) ListAppointments(ctx context.Context, officerID string, params url.Values) ([]model.AppointmentItem, error) {
	key := "appointments:" + officerID
	m.Calls = append(m.Calls, key)
	if err := m.Errs[key]; err != nil {
		return nil, err
	}
	return m.Appointments[officerID], nil
}

func (m *MockRegistry) GetProfile(ctx context.Context, companyNumber string) (*model.CompanyProfile, error) {
	key := "profile:" + companyNumber
	m.Calls = append(m.Calls, key)
	if err := m.Errs[key]; err != nil {
		return nil, err
	}
	p, ok := m.Profiles[companyNumber]
	if !ok {
		return nil, fmt.Errorf("no profile for %s", companyNumber)
	}
	return p, nil
}

func officer(name, id string) model.OfficerAppointmentItem {
	return model.OfficerAppointmentItem{
		Name:  name,
		Links: model.OfficerLinks{Officer: model.OfficerLink{Appointments: "/officers/" + id + "/appointments"}},
	}
}

func appointedTo(companyNumbers ...string) []model.AppointmentItem {
	items := make([]model.AppointmentItem, 0, len(companyNumbers))
	for _, n := range companyNumbers {
		items = append(items, model.AppointmentItem{AppointedTo: model.AppointedTo{CompanyNumber: n}})
	}
	return items
}
