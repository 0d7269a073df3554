package application

import (
	"context"
	"time"

	"github.com/fintrackio/fintrack/internal/finance/domain"
	financeErrors "github.com/fintrackio/fintrack/internal/finance/errors"
)

type IncomeService struct {
	repo domain.IncomeRepository
}

func NewIncomeService(repo domain.IncomeRepository) *IncomeService {
	return &IncomeService{repo: repo}
}

type IncomeReport struct {
	Incomes []domain.Income     `json:"incomes"`
	Total   domain.IncomeTotals `json:"total"`
}

func (s *IncomeService) Create(ctx context.Context, userID string, input IncomeInput) (*domain.Income, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	income := &domain.Income{UserID: userID}
	input.apply(income)

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := s.repo.Insert(ctx, income); err != nil {
		return nil, financeErrors.NewStoreError("insert income", err)
	}
	return income, nil
}

func (s *IncomeService) List(ctx context.Context, userID string, month *time.Time) (*IncomeReport, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var incomes []domain.Income
	var err error
	if month != nil {
		start, end := domain.MonthWindow(*month)
		incomes, err = s.repo.FindByUserInRange(ctx, userID, start, end)
	} else {
		incomes, err = s.repo.FindByUser(ctx, userID)
	}
	if err != nil {
		return nil, financeErrors.NewStoreError("list incomes", err)
	}
	if incomes == nil {
		incomes = []domain.Income{}
	}

	return &IncomeReport{
		Incomes: incomes,
		Total:   domain.AggregateIncomes(incomes),
	}, nil
}

func (s *IncomeService) Update(ctx context.Context, userID, incomeID string, input IncomeInput) (*domain.Income, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	income, err := s.repo.FindByID(ctx, incomeID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(income.UserID, userID); err != nil {
		return nil, err
	}

	input.apply(income)
	if err := s.repo.Update(ctx, income); err != nil {
		return nil, financeErrors.NewStoreError("update income", err)
	}
	return income, nil
}

func (s *IncomeService) Delete(ctx context.Context, userID, incomeID string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	income, err := s.repo.FindByID(ctx, incomeID)
	if err != nil {
		return err
	}
	if err := domain.Authorize(income.UserID, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, income.ID); err != nil {
		return financeErrors.NewStoreError("delete income", err)
	}
	return nil
}
