package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"sunday-league/internal/domain/news"
	idgen "sunday-league/internal/platform/id"
)

type NewsService struct {
	newsRepo news.Repository
	idGen    idgen.Generator
	now      func() time.Time
}

func NewNewsService(newsRepo news.Repository, idGen idgen.Generator) *NewsService {
	return &NewsService{
		newsRepo: newsRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

type PublishPostInput struct {
	Title  string
	Body   string
	Author string
}

func (s *NewsService) List(ctx context.Context) ([]news.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.List")
	defer span.End()

	posts, err := s.newsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts, nil
}

func (s *NewsService) Publish(ctx context.Context, input PublishPostInput) (news.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Publish")
	defer span.End()

	postID, err := s.idGen.NewID()
	if err != nil {
		return news.Post{}, fmt.Errorf("generate post id: %w", err)
	}

	post := news.Post{
		ID:          postID,
		Title:       input.Title,
		Body:        input.Body,
		Author:      input.Author,
		PublishedAt: s.now().UTC(),
	}
	if err := post.Validate(); err != nil {
		return news.Post{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.newsRepo.Insert(ctx, post); err != nil {
		return news.Post{}, fmt.Errorf("insert news post: %w", err)
	}
	return post, nil
}
