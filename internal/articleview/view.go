// Package articleview is the article detail page model: one article, its
// comments, the comment draft form and the image layout rule.
package articleview

import (
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"sync"
	"time"

	"blog-publisher/internal/client"
	"blog-publisher/internal/domain"
	"blog-publisher/internal/logger"
)

// DefaultSubmitDelay is how long Submit waits after closing the form before posting.
const DefaultSubmitDelay = time.Second

// Image widths chosen by LayoutWidth.
const (
	PortraitWidth = "50%"
	DefaultWidth  = "auto"
)

// API is the part of the blog API the view uses. *client.Client implements it.
type API interface {
	GetArticle(ctx context.Context, id int64) (*client.Article, error)
	ListComments(ctx context.Context, articleID int64) ([]client.Comment, error)
	CreateComment(ctx context.Context, comment client.NewComment) (*client.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
	FetchImage(ctx context.Context, filename string) (io.ReadCloser, error)
}

var _ API = (*client.Client)(nil)

// Field identifies an input of the comment form.
type Field int

const (
	FieldCommenter Field = iota
	FieldComment
)

// Draft holds the comment form values.
type Draft struct {
	Commenter string
	Comment   string
}

func (d *Draft) set(field Field, value string) {
	switch field {
	case FieldCommenter:
		d.Commenter = value
	case FieldComment:
		d.Comment = value
	}
}

func (d Draft) get(field Field) string {
	if field == FieldCommenter {
		return d.Commenter
	}
	return d.Comment
}

// State is a snapshot of what the page renders.
type State struct {
	Article    *client.Article
	Comments   []client.Comment
	ImageURL   string
	ImageWidth string
	ModalOpen  bool
	Draft      Draft
}

// Option configures a View.
type Option func(*View)

// WithSubmitDelay overrides DefaultSubmitDelay.
func WithSubmitDelay(d time.Duration) Option {
	return func(v *View) {
		v.submitDelay = d
	}
}

// View is safe for concurrent use.
type View struct {
	api         API
	articleID   int64
	submitDelay time.Duration
	log         *slog.Logger

	mu         sync.Mutex
	article    *client.Article
	loading    bool
	comments   []client.Comment
	imageURL   string
	imageWidth string
	modalOpen  bool
	typed      Draft
	committed  Draft

	pending sync.WaitGroup
}

// New creates the view for one article.
func New(api API, articleID int64, opts ...Option) *View {
	v := &View{
		api:         api,
		articleID:   articleID,
		submitDelay: DefaultSubmitDelay,
		log:         logger.WithArticleID(articleID),
		comments:    []client.Comment{},
		imageWidth:  DefaultWidth,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Load fetches the article, unless it is already loaded, and the comment list.
func (v *View) Load(ctx context.Context) {
	v.LoadArticle(ctx)
	v.Refresh(ctx)
}

// LoadArticle fetches the article once. Failures leave the article unset and are only logged.
func (v *View) LoadArticle(ctx context.Context) {
	v.mu.Lock()
	if v.article != nil || v.loading {
		v.mu.Unlock()
		return
	}
	v.loading = true
	v.mu.Unlock()

	article, err := v.api.GetArticle(ctx, v.articleID)

	v.mu.Lock()
	v.loading = false
	if err == nil && article != nil {
		v.article = article
	}
	v.mu.Unlock()

	switch {
	case err != nil:
		v.log.ErrorContext(ctx, "Failed to load article", slog.String("error", err.Error()))
		return
	case article == nil:
		v.log.WarnContext(ctx, "Article not found")
		return
	}

	v.resolveImage(ctx, article)
}

// resolveImage derives the image URL and picks the layout width from the image header.
func (v *View) resolveImage(ctx context.Context, article *client.Article) {
	ref, err := domain.ParseImageRef(article.Image)
	if err != nil {
		v.log.WarnContext(ctx, "Article has no usable image", slog.String("error", err.Error()))
		return
	}

	v.mu.Lock()
	v.imageURL = client.ImagePath(ref.Filename)
	v.mu.Unlock()

	body, err := v.api.FetchImage(ctx, ref.Filename)
	if err != nil {
		v.log.WarnContext(ctx, "Failed to fetch image",
			slog.String("image", ref.Filename),
			slog.String("error", err.Error()))
		return
	}
	defer body.Close()

	cfg, _, err := image.DecodeConfig(body)
	if err != nil {
		v.log.WarnContext(ctx, "Failed to decode image header",
			slog.String("image", ref.Filename),
			slog.String("error", err.Error()))
		return
	}

	v.mu.Lock()
	v.imageWidth = LayoutWidth(cfg.Width, cfg.Height)
	v.mu.Unlock()
}

// LayoutWidth returns PortraitWidth for images taller than they are wide.
func LayoutWidth(width, height int) string {
	if height > width {
		return PortraitWidth
	}
	return DefaultWidth
}

// Refresh re-fetches the comment list. On failure the previous list is kept.
func (v *View) Refresh(ctx context.Context) {
	comments, err := v.api.ListComments(ctx, v.articleID)
	if err != nil {
		v.log.ErrorContext(ctx, "Failed to load comments", slog.String("error", err.Error()))
		return
	}
	if comments == nil {
		comments = []client.Comment{}
	}

	v.mu.Lock()
	v.comments = comments
	v.mu.Unlock()
}

// OpenModal shows the comment form.
func (v *View) OpenModal() {
	v.mu.Lock()
	v.modalOpen = true
	v.mu.Unlock()
}

// CloseModal hides the comment form without submitting.
func (v *View) CloseModal() {
	v.mu.Lock()
	v.modalOpen = false
	v.mu.Unlock()
}

// Type records keystrokes in a form field. Submit only sees the value after Blur.
func (v *View) Type(field Field, value string) {
	v.mu.Lock()
	v.typed.set(field, value)
	v.mu.Unlock()
}

// Blur commits the typed value of a field.
func (v *View) Blur(field Field) {
	v.mu.Lock()
	v.committed.set(field, v.typed.get(field))
	v.mu.Unlock()
}

// Submit closes the form and, after the submit delay, posts the committed draft.
// The list is refreshed when the post succeeds. Use Wait to block until it finishes.
func (v *View) Submit(ctx context.Context) {
	v.mu.Lock()
	v.modalOpen = false
	payload := client.NewComment{
		Commenter: v.committed.Commenter,
		Comment:   v.committed.Comment,
		BlogID:    v.articleID,
	}
	v.typed = Draft{}
	v.pending.Add(1)
	v.mu.Unlock()

	go func() {
		defer v.pending.Done()

		timer := time.NewTimer(v.submitDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			v.log.WarnContext(ctx, "Comment submission cancelled", slog.String("error", ctx.Err().Error()))
			return
		case <-timer.C:
		}

		created, err := v.api.CreateComment(ctx, payload)
		if err != nil {
			v.log.ErrorContext(ctx, "Failed to create comment", slog.String("error", err.Error()))
			return
		}
		v.log.InfoContext(ctx, "Comment created successfully", slog.Int64("comment_id", created.ID))
		v.Refresh(ctx)
	}()
}

// DeleteComment deletes one comment and refreshes the list on success.
func (v *View) DeleteComment(ctx context.Context, commentID int64) {
	if err := v.api.DeleteComment(ctx, commentID); err != nil {
		v.log.ErrorContext(ctx, "Failed to delete comment",
			slog.Int64("comment_id", commentID),
			slog.String("error", err.Error()))
		return
	}
	v.log.InfoContext(ctx, "Comment deleted", slog.Int64("comment_id", commentID))
	v.Refresh(ctx)
}

// Wait blocks until every submitted comment has been posted or abandoned.
func (v *View) Wait() {
	v.pending.Wait()
}

// State returns a copy of the current page state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := State{
		Comments:   append([]client.Comment(nil), v.comments...),
		ImageURL:   v.imageURL,
		ImageWidth: v.imageWidth,
		ModalOpen:  v.modalOpen,
		Draft:      v.typed,
	}
	if v.article != nil {
		article := *v.article
		s.Article = &article
	}
	if s.Comments == nil {
		s.Comments = []client.Comment{}
	}
	return s
}

// Committed returns the draft values Submit would post.
func (v *View) Committed() Draft {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.committed
}
