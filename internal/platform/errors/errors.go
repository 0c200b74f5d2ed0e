package errors

import "errors"

var (
	ErrorNotImplemented    = errors.New("not implemented")
	ErrorInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
	ErrorInvalidSearchType = errors.New("invalid search type")
)
