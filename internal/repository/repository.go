package repository

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/LazyReserve/internal/domain"
	"github.com/wb-go/wbf/retry"
)

const uniqueViolation = "23505"

type scanner interface {
	Scan(dest ...any) error
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// activeStatuses is the $1 argument of every query using sessionColumns.
func activeStatuses() any {
	res := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		res[i] = string(s)
	}
	return pq.Array(res)
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
