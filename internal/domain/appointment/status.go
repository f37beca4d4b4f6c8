package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal indica estados que não admitem nenhuma transição posterior
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition define as transições válidas do ciclo de vida:
// pending → confirmed | cancelled; confirmed → completed | cancelled.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}

// InitialStatus é o status de agendamentos criados por reserva direta
func InitialStatus() Status {
	return StatusPending
}

// PaidStatus é o status de agendamentos originados por pagamento
func PaidStatus() Status {
	return StatusConfirmed
}
