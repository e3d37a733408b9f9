package core

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid config")

	ErrEmptyBatch    = errors.New("batch is empty")
	ErrBatchTooLarge = errors.New("batch is too large")
	ErrBodyTooLarge  = errors.New("request body is too large")
)
