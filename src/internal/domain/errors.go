package domain

import "errors"

var ErrInvalidArgument = errors.New("Invalid argument")
var ErrInvalidState = errors.New("Account is not active")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrRecordNotFound = errors.New("Record not found")
var ErrDuplicateRecord = errors.New("Duplicate record id")
