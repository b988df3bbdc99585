package registry

import (
	"context"
	"net/url"

	"github.com/agenthands/thread/internal/core/model"
)

// Client is the read-only view of the registry used by the association walker.
type Client interface {
	ListOfficers(ctx context.Context, companyNumber string, params url.Values) ([]model.OfficerAppointmentItem, error)
	ListAppointments(ctx context.Context, officerID string, params url.Values) ([]model.AppointmentItem, error)
	GetProfile(ctx context.Context, companyNumber string) (*model.CompanyProfile, error)
}
