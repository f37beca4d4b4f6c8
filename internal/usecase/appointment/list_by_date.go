package appointment

import (
	"context"
	"time"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/dto"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	start, end := domain.DayRange(date)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		barberID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:              ap.ID,
			Date:            ap.Date,
			TimeSlot:        ap.TimeSlot,
			Status:          ap.Status,
			RescheduleCount: ap.RescheduleCount,
			ServiceName:     ap.Service.Name,
		}
		if ap.Customer != nil {
			item.CustomerName = ap.Customer.Name
		}
		out = append(out, item)
	}

	return out, nil
}
