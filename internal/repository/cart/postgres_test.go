package cart

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/domain"
	"storefront-api/internal/migrate"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func TestPostgres_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	repo := NewPostgres(pool)
	userID := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Microsecond)

	cart := &domain.Cart{
		UserID: userID,
		Items: []domain.CartItem{
			{ID: uuid.NewString(), ProductID: "1", Quantity: 2, AddedAt: now},
			{ID: uuid.NewString(), ProductID: "2", Quantity: 1, AddedAt: now.Add(time.Second)},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Put(ctx, cart); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := repo.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Items) != 2 || got.Items[0].ProductID != "1" || got.ItemCount() != 3 {
		t.Fatalf("unexpected cart %+v", got)
	}

	// Put replaces the record wholesale.
	cart.Items = cart.Items[:1]
	cart.Items[0].Quantity = 5
	if err := repo.Put(ctx, cart); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	got, err = repo.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get after replace: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 5 {
		t.Fatalf("expected replaced cart, got %+v", got)
	}

	if err := repo.Delete(ctx, userID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, userID); err != nil {
		t.Fatalf("Delete twice: %v", err)
	}
	if _, err := repo.Get(ctx, userID); err != domain.ErrNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
