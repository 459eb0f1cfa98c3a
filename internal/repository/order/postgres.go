package order

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO orders (id, user_id, shipping_address, payment_method, subtotal, tax, shipping, total, status, cancellation_reason, estimated_delivery, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12, $13)
`,
		order.ID,
		order.UserID,
		order.ShippingAddress,
		order.PaymentMethod,
		order.Subtotal,
		order.Tax,
		order.Shipping,
		order.Total,
		string(order.Status),
		order.CancellationReason,
		order.EstimatedDelivery,
		order.CreatedAt,
		order.UpdatedAt,
	); err != nil {
		r.logger.Printf("order repo: create id=%s error=%v", order.ID, err)
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (id, order_id, product_id, name, price, quantity, added_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, item.ID, order.ID, item.ProductID, item.Name, item.Price, item.Quantity, item.AddedAt); err != nil {
			r.logger.Printf("order repo: create item order_id=%s error=%v", order.ID, err)
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	const q = `
SELECT id::text, user_id, shipping_address, COALESCE(payment_method, ''), subtotal, tax, shipping, total, status, COALESCE(cancellation_reason, ''), estimated_delivery, created_at, updated_at
FROM orders
WHERE id = $1
`
	order, err := scanOrder(r.pool.QueryRow(ctx, q, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, user_id, shipping_address, COALESCE(payment_method, ''), subtotal, tax, shipping, total, status, COALESCE(cancellation_reason, ''), estimated_delivery, created_at, updated_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("order repo: list user_id=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.loadItems(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, order *domain.Order) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE orders
SET status = $1,
    cancellation_reason = NULLIF($2, ''),
    estimated_delivery = $3,
    updated_at = $4
WHERE id = $5
`, string(order.Status), order.CancellationReason, order.EstimatedDelivery, order.UpdatedAt, order.ID)
	if err != nil {
		r.logger.Printf("order repo: update id=%s error=%v", order.ID, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) loadItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const q = `
SELECT id::text, product_id, name, price, quantity, added_at
FROM order_items
WHERE order_id = $1
ORDER BY added_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Name, &item.Price, &item.Quantity, &item.AddedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var status string
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.ShippingAddress,
		&order.PaymentMethod,
		&order.Subtotal,
		&order.Tax,
		&order.Shipping,
		&order.Total,
		&status,
		&order.CancellationReason,
		&order.EstimatedDelivery,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatus(status)
	return &order, nil
}
