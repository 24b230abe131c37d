package utils

import (
	"math"
)

// RoundMoney rounds an amount half-up to 2 decimal places (currency minor
// unit). All fee/payout splits use this so the two sides always sum back to
// the gross amount exactly.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// SplitCommission splits a gross amount into platform fee and payout using
// the given fee rate. fee + payout == gross holds exactly because the payout
// is derived by subtraction from the rounded fee.
func SplitCommission(gross, rate float64) (fee, payout float64) {
	fee = RoundMoney(gross * rate)
	payout = RoundMoney(gross - fee)
	return fee, payout
}
