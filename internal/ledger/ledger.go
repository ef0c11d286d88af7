// Package ledger holds the in-memory user record and its accounts. It is
// the single source of truth mutated by remittance and sync completion.
package ledger

import (
	"errors"
	"math/rand"
	"regexp"
	"sync"

	"github.com/google/uuid"
)

var ErrInsufficientBalance = errors.New("balance is insufficient")

// BankCatalog lists the banks a synthetic account may be drawn from.
var BankCatalog = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Go",
	"Rust",
	"Java",
	"C",
	"Cpp",
	"C#",
	"Dart",
	"Ruby",
}

// OwnerCatalog lists the owner names used for synthetic lookup views.
var OwnerCatalog = []string{
	"hello",
	"world",
	"js piscine",
	"pisciner",
	"developer",
	"ReactJS",
}

// AccountNameCatalog lists the display names a synthetic account may use.
var AccountNameCatalog = []string{
	"저축예금",
	"주식거래",
	"급여계좌",
	"사업자계좌",
	"자유저축예금",
	"주텍청약",
}

const (
	syntheticBalanceMin = 1_000
	syntheticBalanceMax = 100_000_000
)

type Account struct {
	Name          string `json:"name"`
	Owner         string `json:"owner"`
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	Balance       int64  `json:"balance"`
}

type User struct {
	Name      string    `json:"name"`
	Accounts  []Account `json:"accounts"`
	TwoFactor string    `json:"2FA"`
}

// AccountView is the public lookup shape: everything but the balance.
type AccountView struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
}

var accountNumberPattern = regexp.MustCompile(
	`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ValidAccountNumber reports whether s is UUID-shaped (8-4-4-4-12 hex).
// Only strings passing this gate are ever looked up as account references.
func ValidAccountNumber(s string) bool {
	return accountNumberPattern.MatchString(s)
}

// Store guards the user record with a single lock; every read-modify-write
// (balance check+debit, credit, append) is one critical section.
type Store struct {
	mu   sync.RWMutex
	user User
}

// NewStore builds a store seeded with the fixture user and its two accounts.
// Each test run constructs its own instance.
func NewStore() *Store {
	return &Store{
		user: User{
			Name: "jaeskim",
			Accounts: []Account{
				{
					Name:          "저축예금",
					Owner:         "jaeskim",
					Bank:          BankCatalog[0],
					AccountNumber: "27984eb0-e171-4eb3-bd90-9b0db53dbbb8",
					Balance:       21_000_000,
				},
				{
					Name:          "주택청약",
					Owner:         "jaeskim",
					Bank:          BankCatalog[1],
					AccountNumber: "df1e6ffb-ffd5-42a8-90e6-9dcec968f5e4",
					Balance:       21_000_000,
				},
			},
			TwoFactor: "123456",
		},
	}
}

// User returns a deep-copied snapshot, safe to marshal while the sync job
// appends concurrently.
func (s *Store) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Accounts returns a deep-copied snapshot of the account list.
func (s *Store) Accounts() []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Account(nil), s.user.Accounts...)
}

// FindAccount resolves an account number by exact match.
func (s *Store) FindAccount(accountNumber string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.user.Accounts {
		if acc.AccountNumber == accountNumber {
			return acc, true
		}
	}
	return Account{}, false
}

// ApplyTransfer debits from and credits to as one atomic pair. An unknown
// from account is treated as an external source with unlimited funds, so
// its debit leg is a no-op; an unknown to account drops the credit leg.
// A known from account is checked before any mutation and fails with
// ErrInsufficientBalance when its balance cannot cover the amount.
// The full updated account list is returned either way.
func (s *Store) ApplyTransfer(from, to string, amount int64) ([]Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(from); i != -1 {
		if s.user.Accounts[i].Balance < amount {
			return nil, ErrInsufficientBalance
		}
		s.user.Accounts[i].Balance -= amount
	}
	if i := s.indexLocked(to); i != -1 {
		s.user.Accounts[i].Balance += amount
	}
	return append([]Account(nil), s.user.Accounts...), nil
}

// AppendSynthetic fabricates one account owned by the fixture user, with a
// random catalog name and bank, a fresh UUID and a random balance, and
// appends it to the user's account list.
func (s *Store) AppendSynthetic() Account {
	acc := Account{
		Name:          sample(AccountNameCatalog),
		Bank:          sample(BankCatalog),
		AccountNumber: uuid.NewString(),
		Balance:       randomBalance(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc.Owner = s.user.Name
	s.user.Accounts = append(s.user.Accounts, acc)
	return acc
}

// SyntheticView fabricates a throwaway public view for an unknown but
// UUID-shaped account number. Nothing is persisted; repeated calls for the
// same number may differ in every field except the number itself.
func SyntheticView(accountNumber string) AccountView {
	return AccountView{
		Owner:         sample(OwnerCatalog),
		Name:          sample(AccountNameCatalog),
		Bank:          sample(BankCatalog),
		AccountNumber: accountNumber,
	}
}

func (s *Store) indexLocked(accountNumber string) int {
	for i, acc := range s.user.Accounts {
		if acc.AccountNumber == accountNumber {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() User {
	u := s.user
	u.Accounts = append([]Account(nil), s.user.Accounts...)
	return u
}

func sample(list []string) string {
	return list[rand.Intn(len(list))]
}

func randomBalance() int64 {
	return int64(rand.Intn(syntheticBalanceMax-syntheticBalanceMin+1) + syntheticBalanceMin)
}
