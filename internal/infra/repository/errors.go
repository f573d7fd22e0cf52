package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/client-directory/internal/httperr"
)

// translateError classifies driver failures into business errors. op
// names the failed action for unclassified errors.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	// already classified
	if httperr.CodeOf(err) != "" {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.Wrap(httperr.CodeNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return httperr.BusinessError{
				Code:    httperr.CodeConstraintViolation,
				Message: constraintMessage(pgErr),
				Err:     err,
			}
		case strings.HasPrefix(pgErr.Code, "08"):
			return httperr.Wrap(httperr.CodeConnection, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if isConnectionFailure(err) {
		return httperr.Wrap(httperr.CodeConnection, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func constraintMessage(pgErr *pgconn.PgError) string {
	switch pgErr.Code {
	case "23503":
		return "foreign key violation"
	case "23502":
		return "not-null violation"
	case "23505":
		return "unique violation"
	}
	return "constraint violation"
}

func isConnectionFailure(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF)
}
