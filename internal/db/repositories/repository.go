package repositories

import (
	"errors"
	"net/http"

	"github.com/go-pg/pg/v10"

	"github.com/Arallon-co/bettermeet/internal/apperrors"
)

type repository struct {
	db *pg.DB
}

// translateError maps store-level failures onto the API error taxonomy:
// missing rows become the given 404 code, anything else a generic 500.
func translateError(err error, notFound apperrors.Code) error {
	if err == nil {
		return nil
	}

	if apiErr, ok := apperrors.From(err); ok {
		return apiErr
	}

	if errors.Is(err, pg.ErrNoRows) {
		return apperrors.New(http.StatusNotFound, notFound, "")
	}

	return apperrors.New(http.StatusInternalServerError, apperrors.CodeDatabaseError, "")
}

func isIntegrityViolation(err error) bool {
	var pgErr pg.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation()
}
