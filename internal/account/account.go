// Package account implements the balance arithmetic of a single teller
// session. Balances are exact decimals; the functions here never mutate
// state and never round.
package account

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeOperand is returned when a withdrawal or deposit amount is below zero.
	ErrNegativeOperand = errors.New("amount must not be negative")
	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Withdraw returns the balance remaining after taking amount out of balance.
// Overdrafts are rejected with ErrInsufficientFunds.
func Withdraw(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return balance, fmt.Errorf("withdraw %s: %w", amount, ErrNegativeOperand)
	}
	if amount.GreaterThan(balance) {
		return balance, fmt.Errorf("withdraw %s from %s: %w", amount, balance, ErrInsufficientFunds)
	}
	return balance.Sub(amount), nil
}

// Deposit returns the balance after adding amount to balance.
func Deposit(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return balance, fmt.Errorf("deposit %s: %w", amount, ErrNegativeOperand)
	}
	return balance.Add(amount), nil
}
