package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors surfaced by repositories so services can map storage
// constraint violations without inspecting driver errors themselves.
var (
	ErrDuplicate  = errors.New("duplicate row")
	ErrForeignKey = errors.New("referenced row does not exist")
)

func constraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return ErrDuplicate
		case "23503":
			return ErrForeignKey
		}
	}
	return nil
}
