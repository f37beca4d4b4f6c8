package httperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsUniqueViolation reconhece a violação de constraint única em todos os
// caminhos possíveis: o erro traduzido pelo gorm, o erro cru do postgres
// (23505 unique_violation, 23P01 exclusion_violation) e o erro cru do
// sqlite usado em desenvolvimento local.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
