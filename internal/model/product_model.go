package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   int64           `json:"productid"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
}
