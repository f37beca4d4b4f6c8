package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/notification"
	"github.com/agendabarber/booking-api/internal/timezone"
	"github.com/agendabarber/booking-api/internal/validators"
)

// Window é a política única de lembrete: a cada minuto, avisamos os
// agendamentos confirmados que começam nos próximos 15 minutos.
// ReminderSentAt impede reenvio.
const Window = 15 * time.Minute

type Service struct {
	repo     domain.Repository
	notifier *notification.Dispatcher
	cron     *cron.Cron
}

func New(repo domain.Repository, notifier *notification.Dispatcher) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		cron:     cron.New(),
	}
}

func (s *Service) Start() {
	s.cron.AddFunc("* * * * *", func() {
		s.Run(context.Background(), timezone.Now())
	})

	s.cron.Start()
	log.Println("Reminder scheduler started")
}

func (s *Service) Stop() {
	s.cron.Stop()
}

// Run processa uma rodada de lembretes relativa a now
func (s *Service) Run(ctx context.Context, now time.Time) {
	dayStart, _ := domain.DayRange(now)

	// dois dias cobrem a janela cruzando a meia-noite
	apps, err := s.repo.ListUnremindedForDay(ctx, dayStart, dayStart.Add(48*time.Hour))
	if err != nil {
		log.Printf("reminder: failed to list appointments: %v", err)
		return
	}

	for i := range apps {
		ap := &apps[i]

		start := domain.SlotStart(ap.Date, ap.TimeSlot, timezone.Shop())
		if !start.After(now) || start.Sub(now) > Window {
			continue
		}

		if ap.Customer != nil && ap.Customer.Phone != "" {
			s.notifier.Dispatch(notification.Message{
				To: ap.Customer.Phone,
				Body: fmt.Sprintf(
					"Lembrete: seu horário é hoje, %s às %s.",
					ap.Date.Format(validators.DateLayout),
					ap.TimeSlot,
				),
			})
		}

		if err := s.repo.MarkReminderSent(ctx, ap.ID, now); err != nil {
			log.Printf("reminder: failed to mark appointment %d: %v", ap.ID, err)
		}
	}
}
