package appointment

import "time"

type AvailabilityInput struct {
	BarberID uint
	Date     time.Time
}

// Availability expõe também os horários ocupados para exibição no cliente
type Availability struct {
	AvailableSlots []string `json:"available_slots"`
	BookedSlots    []string `json:"booked_slots"`
}
