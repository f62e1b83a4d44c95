package mysql

import (
	"errors"
	"fmt"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/feed-engagement/domain"
)

// erDupEntry is MySQL's ER_DUP_ENTRY.
const erDupEntry = 1062

// wrapErr maps gorm/driver errors onto domain errors.
// Anything that is not a missing row means the store could not serve the call.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, op, err)
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqldrv.MySQLError
	return errors.As(err, &myErr) && myErr.Number == erDupEntry
}
