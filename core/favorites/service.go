// ABOUTME: Favorites service keeps a list of saved articles in the durable store
// ABOUTME: Articles are identified by their id, so saving the same article twice is a no-op

package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"newsdesk-api/core/domain"
	coreerrors "newsdesk-api/core/errors"
	"newsdesk-api/core/interfaces"
)

// StorageKey is where the list lives in the store
const StorageKey = "favorites"

// FavoritesService manages saved articles
type FavoritesService struct {
	store interfaces.Cache
	mu    sync.Mutex
}

// NewFavoritesService creates a new favorites service instance
func NewFavoritesService(store interfaces.Cache) *FavoritesService {
	return &FavoritesService{
		store: store,
	}
}

// List returns saved articles in the order they were added
func (s *FavoritesService) List(ctx context.Context) ([]domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Add saves article unless one with the same id is already saved. It
// reports whether the list changed.
func (s *FavoritesService) Add(ctx context.Context, article domain.Article) (bool, error) {
	if !article.IsValid() {
		return false, &coreerrors.ValidationError{Field: "article", Message: "id, title, source name and an absolute url are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	if indexOf(saved, article.ID) >= 0 {
		return false, nil
	}

	return true, s.save(ctx, append(saved, article))
}

// Remove deletes the article with id
func (s *FavoritesService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.load(ctx)
	if err != nil {
		return err
	}

	i := indexOf(saved, id)
	if i < 0 {
		return &coreerrors.NotFoundError{Resource: "favorite", ID: id}
	}

	return s.save(ctx, append(saved[:i], saved[i+1:]...))
}

// Contains reports whether an article with id is saved
func (s *FavoritesService) Contains(ctx context.Context, id string) (bool, error) {
	saved, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return indexOf(saved, id) >= 0, nil
}

func (s *FavoritesService) load(ctx context.Context) ([]domain.Article, error) {
	if s.store == nil {
		return nil, errors.New("favorites store not configured")
	}

	data, err := s.store.Get(ctx, StorageKey)
	if errors.Is(err, interfaces.ErrCacheMiss) {
		return []domain.Article{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	var saved []domain.Article
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	if saved == nil {
		saved = []domain.Article{}
	}
	return saved, nil
}

func (s *FavoritesService) save(ctx context.Context, saved []domain.Article) error {
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := s.store.Set(ctx, StorageKey, data, 0); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}

func indexOf(saved []domain.Article, id string) int {
	for i, article := range saved {
		if article.ID == id {
			return i
		}
	}
	return -1
}
