package db

import (
	"fmt"
)

type NumberTakenError struct {
	Number int
}

func (e *NumberTakenError) Error() string {
	return fmt.Sprintf("Number %d is already taken", e.Number)
}

type OrderNotFoundError struct {
	ID int
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("Order %d not found", e.ID)
}
