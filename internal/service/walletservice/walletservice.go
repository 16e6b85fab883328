package walletservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/monitoring"
	"github.com/GlebRadaev/clippa/internal/pg"
	"github.com/GlebRadaev/clippa/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	RecentTransactions = 50
	MaxTransactions    = 100

	defaultCreditDescription = "Funds added"
	defaultDebitDescription  = "Funds withdrawn"
)

//go:generate mockgen -source=walletservice.go -destination=mock_repo.go -package=walletservice
type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error)
	Increment(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
	Decrement(ctx context.Context, walletID int, amount decimal.Decimal) (*domain.Wallet, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ListByWalletID(ctx context.Context, walletID, limit, offset int) ([]domain.Transaction, error)
}

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	metrics         *monitoring.Metrics
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		metrics:         monitoring.Init(),
	}
}

var (
	ErrInvalidAmount       = errors.New("Invalid amount")
	ErrWalletNotFound      = errors.New("Wallet not found")
	ErrInsufficientBalance = errors.New("Insufficient balance")
	ErrInvalidCard         = errors.New("Invalid payout card number")
)

// GetWallet returns the user's wallet with its latest transactions,
// creating an empty wallet on first access.
func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return s.withRecentTransactions(ctx, wallet)
}

func (s *Service) AddFunds(ctx context.Context, userID int, amount decimal.Decimal, description string) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if description == "" {
		description = defaultCreditDescription
	}

	var wallet *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.walletRepo.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		if _, err := s.transactionRepo.Create(ctx, &domain.Transaction{
			WalletID:    current.ID,
			Amount:      amount,
			Type:        domain.TransactionCredit,
			Description: description,
		}); err != nil {
			return err
		}
		wallet, err = s.walletRepo.Increment(ctx, current.ID, amount)
		return err
	})
	if err != nil {
		zap.L().Error("failed to add funds", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	s.metrics.WalletTransactions.WithLabelValues(string(domain.TransactionCredit)).Inc()
	zap.L().Info("funds added", zap.Int("userID", userID), zap.String("amount", amount.String()))
	return s.withRecentTransactions(ctx, wallet)
}

// WithdrawFunds debits the wallet. The debit is conditional on the balance
// covering the amount, so concurrent withdrawals cannot overdraw.
func (s *Service) WithdrawFunds(ctx context.Context, userID int, amount decimal.Decimal, description, payoutCard string) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if payoutCard != "" && !validate.IsLuhn(payoutCard) {
		return nil, ErrInvalidCard
	}
	if description == "" {
		description = defaultDebitDescription
	}
	if payoutCard != "" {
		description += " to card ending " + validate.LastFour(payoutCard)
	}

	var wallet *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.walletRepo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrWalletNotFound
		}
		wallet, err = s.walletRepo.Decrement(ctx, current.ID, amount)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrInsufficientBalance
		}
		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			WalletID:    current.ID,
			Amount:      amount,
			Type:        domain.TransactionDebit,
			Description: description,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrWalletNotFound) && !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to withdraw funds", zap.Int("userID", userID), zap.Error(err))
		}
		return nil, err
	}
	s.metrics.WalletTransactions.WithLabelValues(string(domain.TransactionDebit)).Inc()
	zap.L().Info("funds withdrawn", zap.Int("userID", userID), zap.String("amount", amount.String()))
	return s.withRecentTransactions(ctx, wallet)
}

// GetTransactions pages through the user's ledger, newest first. A user
// without a wallet has an empty ledger.
func (s *Service) GetTransactions(ctx context.Context, userID, limit, offset int) ([]domain.Transaction, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxTransactions {
		limit = MaxTransactions
	}
	if offset < 0 {
		offset = 0
	}
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return []domain.Transaction{}, nil
	}
	transactions, err := s.transactionRepo.ListByWalletID(ctx, wallet.ID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) withRecentTransactions(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	transactions, err := s.transactionRepo.ListByWalletID(ctx, wallet.ID, RecentTransactions, 0)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	wallet.Transactions = transactions
	return wallet, nil
}
