package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-publisher/internal/infrastructure/database"
	"blog-publisher/internal/infrastructure/database/dbtest"
)

func TestBootstrap(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := dbtest.StartPostgres(t)
	defer testDB.Cleanup(t)
	ctx := context.Background()

	countRows := func(t *testing.T, table string) int {
		var n int
		require.NoError(t, testDB.Pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n))
		return n
	}

	t.Run("fresh database gets both tables", func(t *testing.T) {
		missing, err := database.CheckTables(ctx, testDB.Pool)
		require.NoError(t, err)
		assert.Equal(t, []string{"blog", "comment"}, missing)

		version, err := database.Bootstrap(ctx, testDB.Pool, testDB.ConnStr, database.BootstrapOptions{})
		require.NoError(t, err)
		assert.Equal(t, uint(1), version)

		missing, err = database.CheckTables(ctx, testDB.Pool)
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("second run without reset keeps data", func(t *testing.T) {
		_, err := testDB.Pool.Exec(ctx, `INSERT INTO blog (title, author, article, image) VALUES ('t', 'a', 'b', '{"filename":"x.png"}')`)
		require.NoError(t, err)

		_, err = database.Bootstrap(ctx, testDB.Pool, testDB.ConnStr, database.BootstrapOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, countRows(t, "blog"))
	})

	t.Run("reset twice yields the same empty tables", func(t *testing.T) {
		_, err := testDB.Pool.Exec(ctx, `INSERT INTO comment (blog_id, commenter, comment) SELECT blog_id, 'ann', 'hi' FROM blog LIMIT 1`)
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			version, err := database.Bootstrap(ctx, testDB.Pool, testDB.ConnStr, database.BootstrapOptions{Reset: true})
			require.NoError(t, err)
			assert.Equal(t, uint(1), version)

			assert.Equal(t, 0, countRows(t, "blog"))
			assert.Equal(t, 0, countRows(t, "comment"))
			assert.Equal(t, []string{"blog", "comment", "schema_migrations"}, testDB.PublicTables(t))
		}
	})

	t.Run("comment requires an existing article", func(t *testing.T) {
		_, err := testDB.Pool.Exec(ctx, `INSERT INTO comment (blog_id, commenter, comment) VALUES (999, 'ann', 'orphan')`)
		assert.Error(t, err)
	})

	t.Run("defaults are filled server side", func(t *testing.T) {
		var articleID int64
		err := testDB.Pool.QueryRow(ctx,
			`INSERT INTO blog (title, author, article, image) VALUES ('t', 'a', 'b', '{"filename":"x.png"}') RETURNING blog_id`).Scan(&articleID)
		require.NoError(t, err)

		var hasDate, hasTimestamp bool
		require.NoError(t, testDB.Pool.QueryRow(ctx,
			`SELECT date IS NOT NULL FROM blog WHERE blog_id = $1`, articleID).Scan(&hasDate))
		assert.True(t, hasDate)

		require.NoError(t, testDB.Pool.QueryRow(ctx,
			`INSERT INTO comment (blog_id, commenter, comment) VALUES ($1, 'ann', 'hi') RETURNING date IS NOT NULL`, articleID).Scan(&hasTimestamp))
		assert.True(t, hasTimestamp)
	})

	t.Run("unversioned legacy tables with rows survive a non-reset bootstrap", func(t *testing.T) {
		_, err := testDB.Pool.Exec(ctx, `DROP TABLE schema_migrations`)
		require.NoError(t, err)
		articles, comments := countRows(t, "blog"), countRows(t, "comment")
		require.Positive(t, articles)
		require.Positive(t, comments)

		version, err := database.Bootstrap(ctx, testDB.Pool, testDB.ConnStr, database.BootstrapOptions{})
		require.NoError(t, err)
		assert.Equal(t, uint(1), version)
		assert.Equal(t, articles, countRows(t, "blog"))
		assert.Equal(t, comments, countRows(t, "comment"))
	})

	t.Run("reset replaces unversioned legacy tables", func(t *testing.T) {
		_, err := testDB.Pool.Exec(ctx, `DROP TABLE schema_migrations`)
		require.NoError(t, err)

		_, err = database.Bootstrap(ctx, testDB.Pool, testDB.ConnStr, database.BootstrapOptions{Reset: true})
		require.NoError(t, err)
		assert.Equal(t, 0, countRows(t, "blog"))
		assert.Equal(t, []string{"blog", "comment", "schema_migrations"}, testDB.PublicTables(t))
	})

	t.Run("cancelled context is rejected", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := database.Bootstrap(cancelled, testDB.Pool, testDB.ConnStr, database.BootstrapOptions{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
