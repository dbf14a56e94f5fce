// Package impl contains the concrete application services.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"localhelp/config"
	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/geo"
	"localhelp/internal/domain/repository"
	"localhelp/internal/usecase"
)

type searchService struct {
	postRepo      repository.PostRepository
	lostFoundRepo repository.LostFoundRepository
	addressRepo   repository.AddressRepository
	searchCfg     *config.SearchConfig
	logger        *slog.Logger
}

// NewSearchService creates a new search service instance
func NewSearchService(
	postRepo repository.PostRepository,
	lostFoundRepo repository.LostFoundRepository,
	addressRepo repository.AddressRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SearchUsecase {
	searchCfg := cfg.Search
	if searchCfg == nil {
		searchCfg = &config.SearchConfig{
			DefaultRadiusKm:         1,
			MaxRadiusKm:             50,
			VerificationToleranceKm: 1.5,
		}
	}

	return &searchService{
		postRepo:      postRepo,
		lostFoundRepo: lostFoundRepo,
		addressRepo:   addressRepo,
		searchCfg:     searchCfg,
		logger:        logger,
	}
}

// SearchNearbyPosts returns posts strictly within the radius of the origin,
// nearest first. The requester's own posts never appear.
func (s *searchService) SearchNearbyPosts(ctx context.Context, input *usecase.NearbyPostsInput) ([]*entity.NearbyPost, error) {
	radius, err := s.normalizeRadius(input.RadiusKm)
	if err != nil {
		return nil, err
	}

	origin, ok := s.resolveOrigin(ctx, input.UserID, input.Latitude, input.Longitude)
	if !ok {
		// No usable origin anywhere. An empty result set, not a failure.
		return []*entity.NearbyPost{}, nil
	}

	posts, err := s.postRepo.FindAllPosts(ctx)
	if err != nil {
		// Degrade reads to empty results so a flaky store does not take the
		// whole search surface down with it.
		s.logger.WarnContext(ctx, "post search degraded to empty results",
			slog.String("error", err.Error()))

		return []*entity.NearbyPost{}, nil
	}

	results := make([]*entity.NearbyPost, 0)
	for _, post := range posts {
		if post.UserID == input.UserID {
			continue
		}
		if input.Skill != "" && !strings.EqualFold(post.Skill, input.Skill) {
			continue
		}
		coord := post.Coordinate()
		if !coord.Valid() {
			continue
		}

		distance := geo.DistanceKm(origin, coord)
		if distance < radius {
			results = append(results, &entity.NearbyPost{Post: *post, DistanceKm: distance})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}

		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	return results, nil
}

// SearchNearbyLostFound returns active lost & found items strictly within the
// radius of the origin, nearest first.
func (s *searchService) SearchNearbyLostFound(ctx context.Context, input *usecase.NearbyLostFoundInput) ([]*entity.NearbyLostFoundItem, error) {
	radius, err := s.normalizeRadius(input.RadiusKm)
	if err != nil {
		return nil, err
	}

	origin, ok := s.resolveOrigin(ctx, input.UserID, input.Latitude, input.Longitude)
	if !ok {
		return []*entity.NearbyLostFoundItem{}, nil
	}

	items, err := s.lostFoundRepo.FindActiveItems(ctx, repository.LostFoundFilter{
		Type:     input.Type,
		Category: input.Category,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "lost & found search degraded to empty results",
			slog.String("error", err.Error()))

		return []*entity.NearbyLostFoundItem{}, nil
	}

	results := make([]*entity.NearbyLostFoundItem, 0)
	for _, item := range items {
		coord := item.Coordinate()
		if !coord.Valid() {
			continue
		}

		distance := geo.DistanceKm(origin, coord)
		if distance < radius {
			results = append(results, &entity.NearbyLostFoundItem{LostFoundItem: *item, DistanceKm: distance})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}

		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	return results, nil
}

// normalizeRadius applies the default when no radius was given, rejects
// non-positive values and clamps to the configured maximum. An explicit zero
// is a caller error, not a request for the default.
func (s *searchService) normalizeRadius(radiusKm *float64) (float64, error) {
	if radiusKm == nil {
		return s.searchCfg.DefaultRadiusKm, nil
	}
	if *radiusKm <= 0 {
		return 0, domainerrors.ErrInvalidRadius
	}
	if *radiusKm > s.searchCfg.MaxRadiusKm {
		return s.searchCfg.MaxRadiusKm, nil
	}

	return *radiusKm, nil
}

// resolveOrigin picks the search origin: the request coordinate when it
// parses and is in range, otherwise the requester's registered address.
// Returns false when neither yields a usable coordinate.
func (s *searchService) resolveOrigin(ctx context.Context, userID, latitude, longitude string) (geo.Coordinate, bool) {
	if coord, ok := geo.Parse(latitude, longitude); ok {
		return coord, true
	}

	if userID == "" {
		return geo.Coordinate{}, false
	}

	address, err := s.addressRepo.FindAddressByUser(ctx, userID)
	if err != nil {
		return geo.Coordinate{}, false
	}

	coord := address.Coordinate()
	if !coord.Valid() {
		return geo.Coordinate{}, false
	}

	return coord, true
}
