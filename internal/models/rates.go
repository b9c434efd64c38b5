package models

import "github.com/shopspring/decimal"

// RateTable maps a foreign currency code to the number of base-currency
// units one unit of that currency is worth. The base currency itself is
// implicit with a multiplier of 1 and never appears as a key.
type RateTable map[string]decimal.Decimal
