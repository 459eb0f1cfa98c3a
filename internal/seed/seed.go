package seed

import (
	"context"
	"fmt"

	"storefront-api/internal/catalog"
	productrepo "storefront-api/internal/repository/product"
)

// Apply upserts the demo catalog into the given product store. It is
// idempotent and works against either storage backend.
func Apply(ctx context.Context, repo productrepo.Repository) error {
	for _, p := range catalog.Products() {
		if _, err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}
	return nil
}
