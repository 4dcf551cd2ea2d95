package customers

import (
	"context"
	"strings"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/repository"
)

type CustomerUseCase interface {
	Add(ctx context.Context, input CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int64, input CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type CustomerInput struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IDNumber string `json:"id_number"`
}

type CustomerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Add(ctx context.Context, input CustomerInput) (*domain.Customer, error) {
	name := strings.TrimSpace(input.FullName)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	customer := &domain.Customer{
		FullName: name,
		Phone:    input.Phone,
		Email:    input.Email,
		IDNumber: input.IDNumber,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, input CustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.FullName)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	customer.FullName = name
	customer.Phone = input.Phone
	customer.Email = input.Email
	customer.IDNumber = input.IDNumber
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

var _ CustomerUseCase = (*CustomerService)(nil)
