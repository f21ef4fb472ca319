package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gastonduartem/MILAN/internal/types"
)

const maxBackTextLen = 15

// OrderError is a user-correctable validation failure. The message is
// part of the API contract.
type OrderError struct {
	reason string
}

func (e *OrderError) Error() string {
	return e.reason
}

var (
	ErrNameRequired     = &OrderError{"Name required"}
	ErrInvalidNumber    = &OrderError{"Invalid number (1-99)"}
	ErrBackTextRequired = &OrderError{"Back text required"}
	ErrBackTextTooLong  = &OrderError{"Back text max 15 characters"}
	ErrInvalidSize      = &OrderError{"Invalid size"}
)

// Order normalizes a raw submission into write-ready params. Checks run
// in a fixed order and the first failure wins.
func Order(input types.OrderInput) (types.OrderParams, error) {

	realName := strings.TrimSpace(input.RealName)
	backText := strings.TrimSpace(input.BackText)
	size := types.Size(strings.ToUpper(strings.TrimSpace(input.Size)))

	if realName == "" {
		return types.OrderParams{}, ErrNameRequired
	}

	number, err := strconv.Atoi(strings.TrimSpace(input.Number.String()))
	if err != nil || number < 1 || number > 99 {
		return types.OrderParams{}, ErrInvalidNumber
	}

	if backText == "" {
		return types.OrderParams{}, ErrBackTextRequired
	}
	if utf8.RuneCountInString(backText) > maxBackTextLen {
		return types.OrderParams{}, ErrBackTextTooLong
	}

	if !types.ValidSize(size) {
		return types.OrderParams{}, ErrInvalidSize
	}

	return types.OrderParams{
		RealName: realName,
		Number:   number,
		BackText: backText,
		Size:     size,
	}, nil
}
