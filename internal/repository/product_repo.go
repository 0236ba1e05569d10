package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Ericatici/payment-service/internal/model"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(ctx context.Context, name, category string, description *string, price decimal.Decimal) (int64, error) {
	var id int64
	q := `
		INSERT INTO products (name, category, description, price, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING productid
	`
	if err := r.DB.QueryRow(ctx, q, name, category, description, price).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	q := `
		SELECT productid, name, category, description, price, created_at, deleted_at
		FROM products
		WHERE productid=$1 AND deleted_at IS NULL
	`
	err := r.DB.QueryRow(ctx, q, id).Scan(&p.ProductID, &p.Name, &p.Category, &p.Description, &p.Price, &p.CreatedAt, &p.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("product not found")
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	q := `
		SELECT productid, name, category, description, price, created_at, deleted_at
		FROM products
		WHERE deleted_at IS NULL
		ORDER BY productid
	`
	rows, err := r.DB.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Category, &p.Description, &p.Price, &p.CreatedAt, &p.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `UPDATE products SET deleted_at=NOW() WHERE productid=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}
