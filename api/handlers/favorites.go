// ABOUTME: Favorites handlers for the Huma API
// ABOUTME: Lists, saves and removes articles kept in the durable store

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsdesk-api/api/dto/mappers"
	"newsdesk-api/api/dto/requests"
	"newsdesk-api/api/dto/responses"
	"newsdesk-api/core/domain"
	"newsdesk-api/pkg/featureflags"
)

// FavoritesService is what the handlers need from the favorites service
type FavoritesService interface {
	List(ctx context.Context) ([]domain.Article, error)
	Add(ctx context.Context, article domain.Article) (bool, error)
	Remove(ctx context.Context, id string) error
}

// FavoritesHandler handles favorites requests
type FavoritesHandler struct {
	favorites FavoritesService
	flags     featureflags.Manager
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(service FavoritesService, flags featureflags.Manager) *FavoritesHandler {
	return &FavoritesHandler{favorites: service, flags: flags}
}

// RegisterRoutes registers all favorites routes
func (h *FavoritesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listFavorites",
		Method:      http.MethodGet,
		Path:        "/favorites",
		Summary:     "List saved articles",
		Tags:        []string{"Favorites"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "saveFavorite",
		Method:      http.MethodPut,
		Path:        "/favorites",
		Summary:     "Save an article",
		Description: "Saving an article whose id is already saved leaves the list unchanged",
		Tags:        []string{"Favorites"},
	}, h.Save)

	huma.Register(api, huma.Operation{
		OperationID: "removeFavorite",
		Method:      http.MethodDelete,
		Path:        "/favorites/{id}",
		Summary:     "Remove a saved article",
		Tags:        []string{"Favorites"},
	}, h.Remove)
}

func (h *FavoritesHandler) enabled(ctx context.Context) error {
	if h.flags != nil && !h.flags.IsEnabled(ctx, featureflags.FavoritesEnabled) {
		return errFeatureDisabled("favorites")
	}
	return nil
}

// FavoritesOutput lists saved articles
type FavoritesOutput struct {
	Body responses.FavoritesResponse
}

// List handles GET /favorites
func (h *FavoritesHandler) List(ctx context.Context, input *struct{}) (*FavoritesOutput, error) {
	if err := h.enabled(ctx); err != nil {
		return nil, err
	}

	saved, err := h.favorites.List(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &FavoritesOutput{Body: mappers.ToFavoritesResponse(saved)}, nil
}

// SaveFavoriteInput defines the input for the Save operation
type SaveFavoriteInput struct {
	Body requests.SaveFavoriteRequest
}

// FavoriteChangeOutput reports a favorites write
type FavoriteChangeOutput struct {
	Body responses.FavoriteChangeResponse
}

// Save handles PUT /favorites
func (h *FavoritesHandler) Save(ctx context.Context, input *SaveFavoriteInput) (*FavoriteChangeOutput, error) {
	if err := h.enabled(ctx); err != nil {
		return nil, err
	}

	changed, err := h.favorites.Add(ctx, mappers.ArticleFromRequest(input.Body))
	if err != nil {
		return nil, toHumaError(err)
	}
	return &FavoriteChangeOutput{Body: responses.FavoriteChangeResponse{ID: input.Body.ID, Changed: changed}}, nil
}

// RemoveFavoriteInput defines the input for the Remove operation
type RemoveFavoriteInput struct {
	ID string `path:"id" doc:"Article identifier"`
}

// Remove handles DELETE /favorites/{id}
func (h *FavoritesHandler) Remove(ctx context.Context, input *RemoveFavoriteInput) (*FavoriteChangeOutput, error) {
	if err := h.enabled(ctx); err != nil {
		return nil, err
	}

	if err := h.favorites.Remove(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return &FavoriteChangeOutput{Body: responses.FavoriteChangeResponse{ID: input.ID, Changed: true}}, nil
}
