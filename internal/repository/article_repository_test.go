package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-publisher/internal/domain"
)

func TestPostgresArticleRepository(t *testing.T) {
	testDB, articleRepo, commentRepo := setupRepositories(t)
	ctx := context.Background()

	t.Run("create assigns id and date", func(t *testing.T) {
		testDB.TruncateTables(t, "comment", "blog")

		article := domain.Article{
			Title:  "First Post",
			Author: "ann",
			Body:   "Hello world",
			Image:  `{"filename":"a.png","mimetype":"image/png"}`,
		}
		require.NoError(t, articleRepo.Create(ctx, &article))

		assert.Positive(t, article.ID)
		assert.False(t, article.Date.IsZero())
		today := time.Now().UTC().Format("2006-01-02")
		assert.Equal(t, today, article.Date.Format("2006-01-02"))
	})

	t.Run("get returns stored fields", func(t *testing.T) {
		testDB.TruncateTables(t, "comment", "blog")
		created := createTestArticle(t, articleRepo, "Readable")

		got, err := articleRepo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Readable", got.Title)
		assert.Equal(t, "Test Author", got.Author)
		assert.Equal(t, "Article body", got.Body)
		assert.Equal(t, `{"filename":"cover.png"}`, got.Image)
	})

	t.Run("get missing article returns nil", func(t *testing.T) {
		testDB.TruncateTables(t, "comment", "blog")

		got, err := articleRepo.GetByID(ctx, 4242)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		testDB.TruncateTables(t, "comment", "blog")
		first := createTestArticle(t, articleRepo, "one")
		second := createTestArticle(t, articleRepo, "two")

		articles, err := articleRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, second.ID, articles[0].ID)
		assert.Equal(t, first.ID, articles[1].ID)
	})

	t.Run("list empty table", func(t *testing.T) {
		testDB.TruncateTables(t, "comment", "blog")

		articles, err := articleRepo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, articles)
		assert.Empty(t, articles)
	})

	t.Run("update changes editable fields only", func(t *testing.T) {
		testDB.TruncateTables(t, "comment", "blog")
		article := createTestArticle(t, articleRepo, "Draft title")
		originalID := article.ID

		article.Title = "Final title"
		article.Body = "Rewritten"
		article.Image = `{"filename":"new.png"}`
		require.NoError(t, articleRepo.Update(ctx, &article))

		got, err := articleRepo.GetByID(ctx, originalID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, originalID, got.ID)
		assert.Equal(t, "Final title", got.Title)
		assert.Equal(t, "Rewritten", got.Body)
		assert.Equal(t, `{"filename":"new.png"}`, got.Image)
	})

	t.Run("update missing article", func(t *testing.T) {
		testDB.TruncateTables(t, "comment", "blog")

		err := articleRepo.Update(ctx, &domain.Article{ID: 99, Title: "t", Author: "a", Body: "b", Image: "{}"})
		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	})

	t.Run("delete cascades to its comments only", func(t *testing.T) {
		testDB.TruncateTables(t, "comment", "blog")
		doomed := createTestArticle(t, articleRepo, "doomed")
		kept := createTestArticle(t, articleRepo, "kept")

		createTestComment(t, commentRepo, doomed.ID, "ann", "first")
		createTestComment(t, commentRepo, doomed.ID, "bob", "second")
		keptComment := createTestComment(t, commentRepo, kept.ID, "cat", "stays")

		require.NoError(t, articleRepo.Delete(ctx, doomed.ID))

		got, err := articleRepo.GetByID(ctx, doomed.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		orphans, err := commentRepo.ListByArticle(ctx, doomed.ID)
		require.NoError(t, err)
		assert.Empty(t, orphans)

		remaining, err := commentRepo.ListByArticle(ctx, kept.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, keptComment.ID, remaining[0].ID)
	})

	t.Run("delete missing article", func(t *testing.T) {
		testDB.TruncateTables(t, "comment", "blog")

		err := articleRepo.Delete(ctx, 12345)
		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := articleRepo.List(cancelled)
		assert.Error(t, err)
	})
}
