package registry

import (
	"strings"

	"github.com/agenthands/thread/internal/core/model"
)

// OfficerID pulls the officer id out of an officer item's appointments link,
// e.g. "/officers/abc123/appointments" -> "abc123".
func OfficerID(item model.OfficerAppointmentItem) (string, error) {
	link := item.Links.Officer.Appointments
	parts := strings.Split(link, "/")
	if len(parts) != 4 || parts[0] != "" || parts[1] != "officers" || parts[3] != "appointments" || parts[2] == "" {
		return "", malformed("officer %q has unexpected appointments link %q", item.Name, link)
	}
	return parts[2], nil
}
