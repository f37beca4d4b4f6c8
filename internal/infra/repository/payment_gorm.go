package repository

import (
	"context"

	"github.com/agendabarber/booking-api/internal/models"
)

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *AppointmentGormRepository) GetPaymentByTransactionID(
	ctx context.Context,
	transactionID string,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&p).Error; err != nil {
		return nil, err
	}

	return &p, nil
}
