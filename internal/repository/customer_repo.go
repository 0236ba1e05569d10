package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ericatici/payment-service/internal/model"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, email, passwordHash string, fullname, cpf *string) (int64, error) {
	var id int64
	q := `
		INSERT INTO customers (email, passwordhash, fullname, cpf, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING customerid
	`
	if err := r.DB.QueryRow(ctx, q, email, passwordHash, fullname, cpf).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CustomerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	q := `SELECT EXISTS(SELECT 1 FROM customers WHERE email=$1 AND deleted_at IS NULL)`
	if err := r.DB.QueryRow(ctx, q, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var c model.Customer
	q := `
		SELECT customerid, email, passwordhash, fullname, cpf, created_at, deleted_at
		FROM customers
		WHERE email=$1 AND deleted_at IS NULL
	`
	err := r.DB.QueryRow(ctx, q, email).Scan(&c.CustomerID, &c.Email, &c.PasswordHash, &c.Fullname, &c.CPF, &c.CreatedAt, &c.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("customer not found")
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	q := `
		SELECT customerid, email, passwordhash, fullname, cpf, created_at, deleted_at
		FROM customers
		WHERE customerid=$1 AND deleted_at IS NULL
	`
	err := r.DB.QueryRow(ctx, q, id).Scan(&c.CustomerID, &c.Email, &c.PasswordHash, &c.Fullname, &c.CPF, &c.CreatedAt, &c.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("customer not found")
		}
		return nil, err
	}
	return &c, nil
}
