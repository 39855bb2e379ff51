package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FeeRate is the flat fee charged on every transfer. It does not vary by
// currency or volume.
var FeeRate = decimal.RequireFromString("0.01")

// Stored amounts carry at most AmountScale fractional digits and
// AmountIntegerDigits integer digits.
const (
	AmountScale         = 8
	AmountIntegerDigits = 16
)

var amountLimit = decimal.New(1, AmountIntegerDigits)

// ValidateAmount checks that amount is positive and representable at the
// stored precision, so nothing computed from it is rounded by storage.
func ValidateAmount(amount decimal.Decimal) error {
	switch {
	case !amount.IsPositive():
		return fmt.Errorf("amount must be positive")
	case !amount.Equal(amount.Truncate(AmountScale)):
		return fmt.Errorf("amount %s has more than %d decimal places", amount, AmountScale)
	case amount.Cmp(amountLimit) >= 0:
		return fmt.Errorf("amount %s has more than %d integer digits", amount, AmountIntegerDigits)
	}
	return nil
}

// CalculateFee returns sourceAmount * FeeRate.
func CalculateFee(sourceAmount decimal.Decimal) decimal.Decimal {
	return sourceAmount.Mul(FeeRate)
}

// ConvertAfterFee returns (sourceAmount - fee) * rate.
func ConvertAfterFee(sourceAmount, fee, rate decimal.Decimal) decimal.Decimal {
	return sourceAmount.Sub(fee).Mul(rate)
}

// Quote is the priced outcome of a prospective transfer.
type Quote struct {
	SourceAmount    decimal.Decimal `json:"sourceAmount"`
	SourceCurrency  Currency        `json:"sourceCurrency"`
	TargetCurrency  Currency        `json:"targetCurrency"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	Fee             decimal.Decimal `json:"fee"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
}

// NewQuote prices sourceAmount against rate.
func NewQuote(sourceAmount decimal.Decimal, source, target Currency, rate decimal.Decimal) Quote {
	fee := CalculateFee(sourceAmount)
	return Quote{
		SourceAmount:    sourceAmount,
		SourceCurrency:  source,
		TargetCurrency:  target,
		ExchangeRate:    rate,
		Fee:             fee,
		ConvertedAmount: ConvertAfterFee(sourceAmount, fee, rate),
	}
}
