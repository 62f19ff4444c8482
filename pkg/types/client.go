package types

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Client represents one person reachable by SMS. The ID is the backend
// record id: stable within one backend, not unique across backends.
// AppointmentTime, Pets and the two sent flags are only populated when the
// client was materialized from an appointment record.
type Client struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	AppointmentTime string `json:"appointmentTime,omitempty"`
	Pets            string `json:"pets,omitempty"`
	SMSSent         bool   `json:"smsSent,omitempty"`
	NoShowSMSSent   bool   `json:"noShowSmsSent,omitempty"`
}

// NormalizeClock converts loosely formatted appointment times such as "9h",
// "9:30" or "09:00" into a zero-padded sortable "HH:MM" form. Returns false
// for values that do not describe a time of day.
func NormalizeClock(s string) (string, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "h", ":")
	s = strings.ReplaceAll(s, "H", ":")
	if s == "" {
		return "", false
	}

	hourPart, minutePart, _ := strings.Cut(s, ":")
	hourPart = strings.TrimSpace(hourPart)
	minutePart = strings.TrimSpace(minutePart)
	if minutePart == "" {
		minutePart = "00"
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return "", false
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return "", false
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// SortClientsByTime orders clients by normalized appointment time ascending.
// Clients without a resolvable time sort last, keeping their relative order.
func SortClientsByTime(clients []Client) {
	sort.SliceStable(clients, func(i, j int) bool {
		ti, iok := NormalizeClock(clients[i].AppointmentTime)
		tj, jok := NormalizeClock(clients[j].AppointmentTime)
		if !iok {
			return false
		}
		if !jok {
			return true
		}
		return ti < tj
	})
}
