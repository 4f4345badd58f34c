// Command article shows one blog article with its comments and can add or delete a comment.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-publisher/internal/articleview"
	"blog-publisher/internal/client"
	"blog-publisher/internal/logger"
)

func main() {
	var (
		addr      = flag.String("addr", "http://localhost:8080", "Blog API base URL")
		articleID = flag.Int64("id", 0, "Article id (required)")
		commenter = flag.String("commenter", "", "Name to post a comment under")
		comment   = flag.String("comment", "", "Comment text to post")
		deleteID  = flag.Int64("delete", 0, "Comment id to delete")
		delay     = flag.Duration("submit-delay", articleview.DefaultSubmitDelay, "Delay before a comment is posted")
		timeout   = flag.Duration("timeout", 10*time.Second, "HTTP client timeout")
		logLevel  = flag.String("log-level", "warn", "Log level")
	)
	flag.Parse()

	configureLogging(os.Stderr, *logLevel)

	if *articleID < 1 {
		fmt.Fprintln(os.Stderr, "article: -id is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := &client.Client{
		Addr:   *addr,
		Client: http.Client{Timeout: *timeout},
	}
	view := articleview.New(api, *articleID, articleview.WithSubmitDelay(*delay))
	view.Load(ctx)

	if *deleteID > 0 {
		view.DeleteComment(ctx, *deleteID)
	}

	if *commenter != "" || *comment != "" {
		view.OpenModal()
		view.Type(articleview.FieldCommenter, *commenter)
		view.Blur(articleview.FieldCommenter)
		view.Type(articleview.FieldComment, *comment)
		view.Blur(articleview.FieldComment)
		view.Submit(ctx)
		view.Wait()
	}

	state := view.State()
	if state.Article == nil {
		logger.Error("Article not available", slog.Int64("article_id", *articleID))
		os.Exit(1)
	}
	render(os.Stdout, state)
}

// configureLogging keeps log records off stdout, which carries the rendered page.
func configureLogging(w io.Writer, level string) {
	logger.SetLogger(logger.New(w))
	logger.SetLevel(logger.ParseLevel(level))
}

func render(w io.Writer, s articleview.State) {
	a := s.Article
	fmt.Fprintf(w, "%s  (%s)\n", a.Title, a.Date)
	if s.ImageURL != "" {
		fmt.Fprintf(w, "image: %s  width: %s\n", s.ImageURL, s.ImageWidth)
	}
	fmt.Fprintf(w, "\n%s\n\nby %s\n\nComments\n", a.Article, a.Author)
	if len(s.Comments) == 0 {
		fmt.Fprintln(w, "No comments")
		return
	}
	for _, c := range s.Comments {
		fmt.Fprintf(w, "\n#%d @ %s\n%s\n", c.ID, c.Commenter, c.Comment)
	}
}
