package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID         = errors.New("invalid record id")
	ErrInvalidCollection = errors.New("invalid collection")
	ErrInvalidStatus     = errors.New("invalid sync status")
	ErrMissingCreatedAt  = errors.New("created_at is required")
	ErrSelfParent        = errors.New("record cannot be its own parent")
	ErrEmptyName         = errors.New("name is required")
	ErrEmptyCurrency     = errors.New("currency is required")
	ErrNegativeLimit     = errors.New("spending limit cannot be negative")
	ErrMissingWallet     = errors.New("wallet reference is required")
	ErrMissingBudget     = errors.New("budget reference is required")
	ErrMissingTx         = errors.New("transaction reference is required")
	ErrMissingPage       = errors.New("page reference is required")
	ErrEmptyKind         = errors.New("block kind is required")
	ErrEmptyTitle        = errors.New("title is required")
	ErrInvalidInterval   = errors.New("event cannot end before it starts")
	ErrInvalidAction     = errors.New("invalid deletion action")
)
