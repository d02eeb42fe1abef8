package domain

import "errors"

// Бизнес-ошибки (маппятся на HTTP коды в transport/web/v1)
var (
	ErrBadParams        = errors.New("bad_params")         // 400
	ErrNotFound         = errors.New("not_found")          // 404
	ErrMethodNotAllowed = errors.New("method_not_allowed") // 405
	ErrUnavailable      = errors.New("unavailable")        // 503
	ErrUnexpected       = errors.New("unexpected")         // 500
)

// Коды для error.code в конверте ответа
const (
	ErrCodeBadParams        = 1000
	ErrCodeNotFound         = 1004
	ErrCodeMethodNotAllowed = 1005
	ErrCodeUnavailable      = 1053
	ErrCodeUnexpected       = 1500
)
