package types

import (
	"encoding/json"
	"time"
)

type Size string

const (
	SizeXS    Size = "XS"
	SizeS     Size = "S"
	SizeM     Size = "M"
	SizeL     Size = "L"
	SizeXL    Size = "XL"
	SizeXXL   Size = "XXL"
	SizeXXXL  Size = "XXXL"
	SizeXXXXL Size = "XXXXL"
)

var sizes = map[Size]struct{}{
	SizeXS:    {},
	SizeS:     {},
	SizeM:     {},
	SizeL:     {},
	SizeXL:    {},
	SizeXXL:   {},
	SizeXXXL:  {},
	SizeXXXXL: {},
}

func ValidSize(s Size) bool {
	_, ok := sizes[s]
	return ok
}

// Order is a stored jersey order. The JSON field names are a stable
// contract with the frontend.
type Order struct {
	ID        int       `json:"id" db:"id"`
	RealName  string    `json:"real_name" db:"real_name"`
	Number    int       `json:"number" db:"number"`
	BackText  string    `json:"back_text" db:"back_text"`
	Size      Size      `json:"size" db:"size"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Number holds the submitted jersey number as raw text. Both the JSON
// number and string forms unmarshal into it, so validation sees the
// value either way.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = Number(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = Number(num.String())
	return nil
}

func (n Number) String() string {
	return string(n)
}

// OrderInput is a raw submission before validation.
type OrderInput struct {
	RealName string `json:"real_name"`
	Number   Number `json:"number"`
	BackText string `json:"back_text"`
	Size     string `json:"size"`
}

// OrderParams is a normalized record ready to be written.
type OrderParams struct {
	RealName string
	Number   int
	BackText string
	Size     Size
}
