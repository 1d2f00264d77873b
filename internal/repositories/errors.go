package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL error 1452: cannot add or update a child row (FK failure).
const mysqlErrNoReferencedRow = 1452

func isForeignKeyViolation(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrNoReferencedRow
}
