package models

import (
	"errors"
)

var (
	ErrGeneral            = errors.New("an error occurred on the server during your request")
	ErrNotFound           = errors.New("there is no")
	ErrDuplicateName      = errors.New("the name is already in use")
	ErrInUse              = errors.New("it is still referenced by at least one transaction")
	ErrEmptyName          = errors.New("the name must not be empty")
	ErrInvalidFormat      = errors.New("the document is not a well-formed list of transactions")
	ErrInvalidTransaction = errors.New("the transaction is invalid")
	ErrUnconfirmed        = errors.New("the import must be confirmed with the number of transactions it replaces")
)
