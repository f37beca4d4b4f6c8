package appointment

import "errors"

var (
	// ErrSlotNotOffered indica que o horário não faz parte do template do barbeiro (rejeição permanente)
	ErrSlotNotOffered = errors.New("appointment: slot not offered by barber schedule")

	// ErrSlotTaken indica conflito com outro agendamento não cancelado (cliente deve escolher outro horário)
	ErrSlotTaken = errors.New("appointment: slot already taken")

	// ErrInvalidTransition indica transição de status fora do ciclo de vida
	ErrInvalidTransition = errors.New("appointment: invalid status transition")

	// ErrRescheduleLimit indica que o agendamento já usou sua única remarcação
	ErrRescheduleLimit = errors.New("appointment: reschedule limit reached")

	// ErrRescheduleLockout indica remarcação dentro da janela de bloqueio de 30 minutos
	ErrRescheduleLockout = errors.New("appointment: reschedule window closed")

	// ErrNotFound indica agendamento inexistente
	ErrNotFound = errors.New("appointment: not found")

	// ErrInvalidDate indica data fora do formato dd/mm/yyyy
	ErrInvalidDate = errors.New("appointment: invalid date")

	// ErrInvalidTimeSlot indica rótulo de horário fora do formato HH:mm
	ErrInvalidTimeSlot = errors.New("appointment: invalid time slot")

	// ErrBarberNotFound / ErrServiceNotFound / ErrCustomerNotFound indicam referência quebrada
	ErrBarberNotFound   = errors.New("appointment: barber not found")
	ErrServiceNotFound  = errors.New("appointment: service not found")
	ErrCustomerNotFound = errors.New("appointment: customer not found")
)
