package storage

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"

	"github.com/campusgo/campus-market/internal/core/domain"
)

// classify wraps a driver error, mapping connection-level failures to
// domain.ErrStorageUnavailable so services can serve fallback data.
func classify(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) || errors.As(err, &netErr) {
		return fmt.Errorf("%s: %v: %w", op, err, domain.ErrStorageUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isDuplicateKey reports MySQL error 1062 (duplicate entry for a unique key).
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
