package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ericatici/payment-service/internal/middleware"
	"github.com/Ericatici/payment-service/internal/model"
	"github.com/Ericatici/payment-service/internal/repository"
)

const (
	MinPasswordLen = 8
	tokenHours     = 72
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type CustomerService struct {
	Customers *repository.CustomerRepository
}

func NewCustomerService(cr *repository.CustomerRepository) *CustomerService {
	return &CustomerService{Customers: cr}
}

// Register creates a customer account with a hashed password.
func (s *CustomerService) Register(ctx context.Context, email, password string, fullname, cpf *string) (int64, error) {
	if email == "" || !emailRegex.MatchString(email) {
		return 0, errors.New("invalid email format")
	}
	if len(password) < MinPasswordLen {
		return 0, fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}

	exists, err := s.Customers.EmailExists(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.Customers.Create(ctx, email, string(hash), fullname, cpf)
}

// Login authenticates and returns a signed session token.
func (s *CustomerService) Login(ctx context.Context, email, password string) (string, error) {
	c, err := s.Customers.GetByEmail(ctx, email)
	if err != nil {
		// do not reveal whether the email exists
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}
	return middleware.GenerateToken(c.CustomerID, c.Email, tokenHours)
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return s.Customers.GetByID(ctx, id)
}
