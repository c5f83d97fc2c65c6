package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"sunday-league/internal/usecase"
)

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	posts, err := h.newsService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]newsPostDTO, 0, len(posts))
	for _, post := range posts {
		items = append(items, newsPostToDTO(post))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type publishPostRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	Body   string `json:"body" validate:"required"`
	Author string `json:"author" validate:"required,max=100"`
}

func (h *Handler) PublishNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PublishNews")
	defer span.End()

	var req publishPostRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	post, err := h.newsService.Publish(ctx, usecase.PublishPostInput{
		Title:  req.Title,
		Body:   req.Body,
		Author: req.Author,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "publish news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, newsPostToDTO(post))
}
