package ledger

import "errors"

var (
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInsufficientFunds      = errors.New("not enough money")
	ErrInactiveAccount        = errors.New("account is not active")
	ErrAccountNotFound        = errors.New("account not found")
	ErrWrongCredential        = errors.New("wrong password")
	ErrDuplicateAccountNumber = errors.New("account number already exists")
)
