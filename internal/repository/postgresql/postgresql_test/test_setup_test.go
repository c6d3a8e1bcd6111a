package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/database"
	"github.com/Vijaykarthik1/tnstc-leave/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to TEST_DATABASE_URL, applies the schema and empties
// the tables. Tests are skipped when the variable is not set.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, postgresql.Migrate(ctx, db))

	_, err = db.Exec(ctx, "TRUNCATE TABLE leave_requests, users CASCADE")
	require.NoError(t, err)

	return db
}
