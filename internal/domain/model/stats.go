package model

import "github.com/shopspring/decimal"

// OrderStats summarises a set of orders for the admin dashboard.
type OrderStats struct {
	Total      int               `json:"total"`
	New        int               `json:"new"`
	InProgress int               `json:"inProgress"`
	Completed  int               `json:"completed"`
	Value      decimal.Decimal   `json:"value"`
	Services   []ServiceCategory `json:"services"`
}
