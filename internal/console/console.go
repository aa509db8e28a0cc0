// Package console runs the interactive text session of the bank simulator on
// top of the banking service.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vysogota0399/bank_simulator/internal/banking"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
)

const timeLayout = "2006-01-02 15:04"

type Bank interface {
	CreateAccount(ctx context.Context, owner, credential string) (*ledger.Account, error)
	Login(ctx context.Context, number, credential string) (*ledger.Account, error)
	Accounts(ctx context.Context) []ledger.AccountSummary
	HasAccounts(ctx context.Context) bool
	Deposit(ctx context.Context, number string, amount decimal.Decimal) (ledger.Receipt, error)
	Withdraw(ctx context.Context, number string, amount decimal.Decimal) (ledger.Receipt, error)
	Balance(ctx context.Context, number string) (decimal.Decimal, error)
	History(ctx context.Context, number string) ([]ledger.Transaction, error)
	Search(ctx context.Context, number string, filter ledger.SearchFilter) ([]ledger.Transaction, error)
}

type Console struct {
	bank Bank
	in   *bufio.Scanner
	out  io.Writer
	lg   *logging.ZapLogger
}

func NewConsole(bank Bank, in io.Reader, out io.Writer, lg *logging.ZapLogger) *Console {
	return &Console{
		bank: bank,
		in:   bufio.NewScanner(in),
		out:  out,
		lg:   lg,
	}
}

// Run serves the main menu until the user exits or the input is closed.
func (c *Console) Run(ctx context.Context) error {
	c.print("BANK SYSTEM\n")

	for {
		if ctx.Err() != nil {
			return nil
		}

		c.print("1. Create account\n2. Login\n3. View all accounts\n0. Exit\n")
		input, err := c.prompt("Select option: ")
		if err != nil {
			return c.finish(ctx, err)
		}

		if input == "" {
			c.print("Please enter a number\n")
			continue
		}

		choice, err := strconv.Atoi(input)
		if err != nil {
			c.print("Invalid option\n")
			continue
		}

		switch choice {
		case 1:
			err = c.createAccount(ctx)
		case 2:
			err = c.login(ctx)
		case 3:
			c.listAccounts(ctx)
		case 0:
			c.print("Goodbye!\n")
			return nil
		default:
			c.print("Invalid option\n")
		}

		if err != nil {
			return c.finish(ctx, err)
		}
		c.print("\n")
	}
}

func (c *Console) finish(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		c.lg.DebugCtx(ctx, "console input closed")
		return nil
	}

	return fmt.Errorf("console: read input error %w", err)
}

func (c *Console) createAccount(ctx context.Context) error {
	c.print("\nCREATE NEW ACCOUNT\n")

	var owner string
	for {
		input, err := c.prompt("Enter your name (letters only): ")
		if err != nil {
			return err
		}
		if input == "" {
			c.print("Username can not be empty\n")
			continue
		}
		if banking.ValidateOwnerName(input) != nil {
			c.print("Name must contain only letters\n")
			continue
		}
		owner = input
		break
	}

	var credential string
	for {
		input, err := c.prompt("Enter your password (4 digits): ")
		if err != nil {
			return err
		}
		if input == "" {
			c.print("Password can not be empty\n")
			continue
		}
		if banking.ValidateCredential(input) != nil {
			c.print("Password must be 4 digits\n")
			continue
		}
		credential = input
		break
	}

	for {
		input, err := c.prompt("Confirm password: ")
		if err != nil {
			return err
		}
		if input == credential {
			break
		}
		c.print("Passwords are different\n")
	}

	a, err := c.bank.CreateAccount(ctx, owner, credential)
	if err != nil {
		c.printError(err)
		return nil
	}

	c.print("\nAccount created successfully!\n")
	c.printf("Account number: %s\nOwner: %s\n", a.Number(), a.Owner())
	return c.session(ctx, a)
}

func (c *Console) login(ctx context.Context) error {
	c.print("\nLogin\n")

	if !c.bank.HasAccounts(ctx) {
		c.print("No accounts exist yet\n")
		return nil
	}

	number, err := c.prompt("Account number: ")
	if err != nil {
		return err
	}
	credential, err := c.prompt("Password: ")
	if err != nil {
		return err
	}

	a, err := c.bank.Login(ctx, number, credential)
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		c.print("Account not found\n")
		return nil
	case errors.Is(err, ledger.ErrWrongCredential):
		c.print("Wrong password\n")
		return nil
	case err != nil:
		c.printError(err)
		return nil
	}

	c.printf("\nWelcome back, %s!\n", a.Owner())
	return c.session(ctx, a)
}

func (c *Console) listAccounts(ctx context.Context) {
	c.print("\nAll accounts:\n")

	accounts := c.bank.Accounts(ctx)
	if len(accounts) == 0 {
		c.print("No accounts\n")
		return
	}

	for _, s := range accounts {
		line := fmt.Sprintf("%s | %s | $%s", s.Number, s.Owner, s.Balance.StringFixed(2))
		if !s.Active {
			line += " | closed"
		}
		c.print(line + "\n")
	}
}

func (c *Console) session(ctx context.Context, a *ledger.Account) error {
	ctx = c.lg.WithContextFields(ctx, zap.String("account_number", a.Number()))
	c.lg.DebugCtx(ctx, "console session started")

	for {
		c.printf("\nACCOUNT MENU\nUser: %s\nAccount: %s\n", a.Owner(), a.Number())
		c.print("1. Deposit\n2. Withdraw\n3. Check balance\n4. Transaction history\n5. Search transactions\n6. Logout\n")

		input, err := c.prompt("\nChoose action: ")
		if err != nil {
			return err
		}
		if input == "" {
			c.print("Please select an option\n")
			continue
		}

		choice, err := strconv.Atoi(input)
		if err != nil {
			c.print("Invalid choice\n")
			continue
		}

		switch choice {
		case 1:
			err = c.deposit(ctx, a)
		case 2:
			err = c.withdraw(ctx, a)
		case 3:
			c.balance(ctx, a)
		case 4:
			c.history(ctx, a)
		case 5:
			err = c.search(ctx, a)
		case 6:
			c.printf("See you soon, %s!\n", a.Owner())
			c.lg.DebugCtx(ctx, "console session finished")
			return nil
		default:
			c.print("Invalid choice\n")
		}

		if err != nil {
			return err
		}
	}
}

func (c *Console) deposit(ctx context.Context, a *ledger.Account) error {
	amount, err := c.readAmount("\nEnter deposit amount: $")
	if err != nil {
		return err
	}

	r, err := c.bank.Deposit(ctx, a.Number(), amount)
	if err != nil {
		c.printError(err)
		return nil
	}

	c.printf("Deposited: $%s\n", r.Transaction.Amount.StringFixed(2))
	return nil
}

func (c *Console) withdraw(ctx context.Context, a *ledger.Account) error {
	amount, err := c.readAmount("\nEnter withdrawal amount: $")
	if err != nil {
		return err
	}

	r, err := c.bank.Withdraw(ctx, a.Number(), amount)
	if err != nil {
		c.printError(err)
		return nil
	}

	c.printf("Withdrawn: $%s\n", r.Transaction.Amount.StringFixed(2))
	return nil
}

func (c *Console) balance(ctx context.Context, a *ledger.Account) {
	b, err := c.bank.Balance(ctx, a.Number())
	if err != nil {
		c.printError(err)
		return
	}

	c.printf("\nBalance: $%s\n", b.StringFixed(2))
}

func (c *Console) history(ctx context.Context, a *ledger.Account) {
	txs, err := c.bank.History(ctx, a.Number())
	if err != nil {
		c.printError(err)
		return
	}

	if len(txs) == 0 {
		c.print("No transactions\n")
		return
	}

	c.print("\nTransaction History:\n")
	c.printTransactions(txs)
}

func (c *Console) search(ctx context.Context, a *ledger.Account) error {
	var filter ledger.SearchFilter

	c.print("\nSearch transactions:\n")
	for {
		input, err := c.prompt("Type (1-deposit, 2-withdrawal, enter-skip): ")
		if err != nil {
			return err
		}

		switch input {
		case "":
		case "1":
			filter.Kind = ledger.Deposit
		case "2":
			filter.Kind = ledger.Withdrawal
		default:
			c.print("Invalid input. Please enter 1, 2 or press Enter.\n")
			continue
		}
		break
	}

	var err error
	if filter.MinAmount, err = c.readOptionalAmount("Min amount $: "); err != nil {
		return err
	}
	if filter.MaxAmount, err = c.readOptionalAmount("Max amount $: "); err != nil {
		return err
	}

	txs, err := c.bank.Search(ctx, a.Number(), filter)
	if err != nil {
		c.printError(err)
		return nil
	}

	if len(txs) == 0 {
		c.print("No matching transactions\n")
		return nil
	}

	c.printf("\nFound %d transactions:\n", len(txs))
	c.printTransactions(txs)
	return nil
}

func (c *Console) printTransactions(txs []ledger.Transaction) {
	for _, tx := range txs {
		c.printf("%d | %s | %s | $%s\n",
			tx.ID,
			tx.Timestamp.Format(timeLayout),
			tx.Kind,
			tx.Amount.StringFixed(2),
		)
	}
}

// readAmount asks until a positive number is entered. Both "," and "." work
// as the decimal separator.
func (c *Console) readAmount(prompt string) (decimal.Decimal, error) {
	c.print(prompt)
	for {
		input, err := c.readLine()
		if err != nil {
			return decimal.Zero, err
		}

		v, err := parseAmount(input)
		if err != nil {
			c.print("Invalid number, enter again: $")
			continue
		}
		if !v.IsPositive() {
			c.print("Amount must be positive, enter again: $")
			continue
		}
		return v, nil
	}
}

// readOptionalAmount returns an unset value for empty or unparsable input.
func (c *Console) readOptionalAmount(prompt string) (decimal.NullDecimal, error) {
	input, err := c.prompt(prompt)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	if input == "" {
		return decimal.NullDecimal{}, nil
	}

	v, err := parseAmount(input)
	if err != nil {
		c.print("Invalid number\n")
		return decimal.NullDecimal{}, nil
	}
	return decimal.NewNullDecimal(v), nil
}

func parseAmount(input string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.ReplaceAll(input, ",", "."))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if err := ledger.CheckScale(v); err != nil {
		return decimal.Decimal{}, err
	}
	return v, nil
}

func (c *Console) prompt(text string) (string, error) {
	c.print(text)
	return c.readLine()
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) printError(err error) {
	c.printf("Error: %s\n", err)
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
