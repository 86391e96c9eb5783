// Package teller runs the interactive menu of a simulated automated teller
// machine. A Session owns one balance and loops over menu choices until the
// user ends it or the input closes.
package teller

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/majorcontext/teller/internal/account"
	"github.com/majorcontext/teller/internal/id"
	"github.com/majorcontext/teller/internal/log"
	"github.com/majorcontext/teller/internal/prompt"
	"github.com/majorcontext/teller/internal/ui"
)

// State is the lifecycle state of a Session.
type State int

const (
	// StateActive means the menu loop is running.
	StateActive State = iota
	// StateTerminated is final.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Menu keys.
const (
	KeyWithdraw byte = '1'
	KeyDeposit  byte = '2'
	KeyBalance  byte = '3'
	KeyEnd      byte = '4'
)

// KeyReader returns the next menu keystroke.
type KeyReader interface {
	ReadKey() (byte, error)
}

// AmountReader returns the next validated, non-negative amount.
type AmountReader interface {
	ReadAmount(ctx context.Context) (decimal.Decimal, error)
}

// Options configures a Session.
type Options struct {
	// Balance is the starting balance. It must not be negative.
	Balance decimal.Decimal
	// Locale formats balances for display. The zero value uses account.DefaultLocale.
	Locale  account.Locale
	Keys    KeyReader
	Amounts AmountReader
	Out     io.Writer
	// ID tags log records. Generated when empty.
	ID string
}

// Session is one run of the teller menu.
type Session struct {
	id      string
	balance decimal.Decimal
	state   State
	locale  account.Locale

	keys    KeyReader
	amounts AmountReader
	out     io.Writer
	style   ui.Style
}

// New creates an active session.
func New(opts Options) (*Session, error) {
	if opts.Balance.IsNegative() {
		return nil, fmt.Errorf("starting balance %s: %w", opts.Balance, account.ErrNegativeOperand)
	}
	if opts.Keys == nil || opts.Amounts == nil || opts.Out == nil {
		return nil, errors.New("session requires a key reader, an amount reader and an output")
	}
	if opts.Locale == (account.Locale{}) {
		opts.Locale = account.DefaultLocale
	}
	if opts.ID == "" {
		opts.ID = id.Session()
	}
	return &Session{
		id:      opts.ID,
		balance: opts.Balance,
		state:   StateActive,
		locale:  opts.Locale,
		keys:    opts.Keys,
		amounts: opts.Amounts,
		out:     opts.Out,
		style:   ui.For(opts.Out),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Balance returns the current balance.
func (s *Session) Balance() decimal.Decimal { return s.balance }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Run prints the welcome banner and handles menu choices until the session
// terminates. Closed input ends the session normally; Run returns nil in
// that case. A canceled context or an interrupted terminal ends the session
// and returns the error.
func (s *Session) Run(ctx context.Context) error {
	log.SetSessionID(s.id)
	defer log.ClearSessionID()
	log.Info("session started", "balance", s.balance.String())

	fmt.Fprintln(s.out, "Welcome to the automated teller machine!")

	for s.state == StateActive {
		if err := ctx.Err(); err != nil {
			s.terminate("canceled")
			return err
		}

		s.showMenu()
		key, err := s.keys.ReadKey()
		if err != nil {
			return s.stop(err)
		}
		if err := s.Handle(ctx, key); err != nil {
			return s.stop(err)
		}
	}
	return nil
}

// Handle performs the action bound to key. Unknown keys do nothing so the
// caller simply shows the menu again. Rejected operations are reported to
// the user and leave the balance unchanged; only input failures are returned.
func (s *Session) Handle(ctx context.Context, key byte) error {
	if s.state != StateActive {
		return nil
	}

	switch key {
	case KeyWithdraw:
		return s.withdraw(ctx)
	case KeyDeposit:
		return s.deposit(ctx)
	case KeyBalance:
		s.showBalance()
	case KeyEnd:
		s.terminate("user")
	default:
		log.Debug("ignored key", "key", fmt.Sprintf("%q", key))
	}
	return nil
}

func (s *Session) withdraw(ctx context.Context) error {
	s.showBalance()
	fmt.Fprintln(s.out, "How much would you like to withdraw?")
	fmt.Fprintln(s.out, s.style.Dim("Please only type numbers and decimal points."))

	amount, err := s.amounts.ReadAmount(ctx)
	if err != nil {
		return s.amountFailed("withdraw", err)
	}

	next, err := account.Withdraw(s.balance, amount)
	switch {
	case errors.Is(err, account.ErrNegativeOperand):
		s.reject("withdraw", amount, err, "Expected a positive number for the withdrawal amount. Use Deposit Funds to add money to an account.")
	case errors.Is(err, account.ErrInsufficientFunds):
		s.reject("withdraw", amount, err, "Unable to withdraw more funds than the account currently holds.")
	case err != nil:
		return err
	default:
		log.Debug("withdrawal accepted", "amount", amount.String(), "balance", next.String())
		s.balance = next
	}
	return nil
}

func (s *Session) deposit(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nHow much would you like to deposit?")
	fmt.Fprintln(s.out, s.style.Dim("Please only type numbers and decimal points."))

	amount, err := s.amounts.ReadAmount(ctx)
	if err != nil {
		return s.amountFailed("deposit", err)
	}

	next, err := account.Deposit(s.balance, amount)
	switch {
	case errors.Is(err, account.ErrNegativeOperand):
		s.reject("deposit", amount, err, "Expected a positive number for the deposit amount. Use Withdraw Funds to remove money from an account.")
	case err != nil:
		return err
	default:
		log.Debug("deposit accepted", "amount", amount.String(), "balance", next.String())
		s.balance = next
	}
	return nil
}

// amountFailed reports an amount that could not be read. Too many bad
// entries only cancels the operation; anything else ends the session.
func (s *Session) amountFailed(op string, err error) error {
	if errors.Is(err, prompt.ErrTooManyAttempts) {
		log.Info("operation abandoned", "op", op, "error", err)
		fmt.Fprintln(s.out, s.style.Red("Too many invalid entries. Returning to the menu."))
		return nil
	}
	return err
}

func (s *Session) reject(op string, amount decimal.Decimal, err error, msg string) {
	log.Info("operation rejected", "op", op, "amount", amount.String(), "balance", s.balance.String(), "error", err)
	fmt.Fprintln(s.out, s.style.Red(msg))
}

func (s *Session) showMenu() {
	fmt.Fprintln(s.out, "\n"+s.style.Bold("Please choose an option below:"))
	fmt.Fprintln(s.out, "1) Withdraw Funds")
	fmt.Fprintln(s.out, "2) Deposit Funds")
	fmt.Fprintln(s.out, "3) View Account Balance")
	fmt.Fprintln(s.out, "4) End Session")
}

func (s *Session) showBalance() {
	fmt.Fprintf(s.out, "\nYour current balance is %s\n", s.style.Green(s.locale.Format(s.balance)))
}

// stop ends the session after a read failure. Closed input is a normal end.
func (s *Session) stop(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, prompt.ErrInputClosed) {
		s.terminate("input closed")
		return nil
	}
	s.terminate("error")
	return err
}

func (s *Session) terminate(reason string) {
	s.state = StateTerminated
	log.Info("session ended", "reason", reason, "balance", s.balance.String())
}
