package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/thread/internal/core/model"
)

func TestOfficerID(t *testing.T) {
	tests := []struct {
		link    string
		want    string
		wantErr bool
	}{
		{link: "/officers/AbC123xyz/appointments", want: "AbC123xyz"},
		{link: "/officers//appointments", wantErr: true},
		{link: "/company/123/officers", wantErr: true},
		{link: "officers/abc/appointments", wantErr: true},
		{link: "", wantErr: true},
	}

	for _, tt := range tests {
		item := model.OfficerAppointmentItem{Name: "Alice"}
		item.Links.Officer.Appointments = tt.link

		got, err := OfficerID(item)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrMalformedResponse, tt.link)
			continue
		}
		assert.NoError(t, err, tt.link)
		assert.Equal(t, tt.want, got)
	}
}
