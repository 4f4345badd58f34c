package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"blog-publisher/internal/domain"
	"blog-publisher/internal/infrastructure/database/dbtest"
	"blog-publisher/internal/repository"
)

// setupRepositories starts a bootstrapped database and returns both repositories over it.
func setupRepositories(t *testing.T) (*dbtest.TestDB, *repository.PostgresArticleRepository, *repository.PostgresCommentRepository) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := dbtest.SetupTestDB(t)
	t.Cleanup(func() { testDB.Cleanup(t) })

	return testDB,
		repository.NewPostgresArticleRepository(testDB.Pool),
		repository.NewPostgresCommentRepository(testDB.Pool)
}

func createTestArticle(t *testing.T, repo *repository.PostgresArticleRepository, title string) domain.Article {
	t.Helper()
	article := domain.Article{
		Title:  title,
		Author: "Test Author",
		Body:   "Article body",
		Image:  `{"filename":"cover.png"}`,
	}
	require.NoError(t, repo.Create(context.Background(), &article))
	return article
}

func createTestComment(t *testing.T, repo *repository.PostgresCommentRepository, articleID int64, commenter, body string) domain.Comment {
	t.Helper()
	comment := domain.Comment{
		ArticleID: articleID,
		Commenter: commenter,
		Body:      body,
	}
	require.NoError(t, repo.Create(context.Background(), &comment))
	return comment
}
