package api

import (
	"context"

	"github.com/phrazzld/tasklist-api/internal/store"
)

// TxRunner executes a unit of store work inside a request-scoped
// transaction. Production wiring binds it to store.RunInTransaction over
// the process pool; tests substitute a pass-through. There is exactly one
// provider, constructed in cmd/server and shared by every handler.
type TxRunner func(ctx context.Context, fn store.TxFn) error
