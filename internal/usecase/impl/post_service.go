package impl

import (
	"context"
	"log/slog"
	"strings"

	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/geo"
	"localhelp/internal/domain/repository"
	"localhelp/internal/domain/service"
	"localhelp/internal/errors"
	"localhelp/internal/usecase"

	"github.com/google/uuid"
)

const maxSkillLength = 100

type postService struct {
	postRepo  repository.PostRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// NewPostService creates a new post service instance
func NewPostService(
	postRepo repository.PostRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.PostUsecase {
	return &postService{
		postRepo:  postRepo,
		qrService: qrService,
		logger:    logger,
	}
}

// CreatePost publishes a new post owned by userID.
func (s *postService) CreatePost(ctx context.Context, userID string, input *usecase.CreatePostInput) (*entity.Post, error) {
	skill := strings.TrimSpace(input.Skill)
	if skill == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("skill is required")
	}
	if len(skill) > maxSkillLength {
		return nil, domainerrors.ErrInvalidInput.WithDetails("skill is too long")
	}

	coord := geo.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if !coord.Valid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("latitude or longitude is out of range")
	}

	post := &entity.Post{
		Skill:       skill,
		Description: strings.TrimSpace(input.Description),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		UserID:      userID,
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "post created",
		slog.String("post_id", post.ID.String()),
		slog.String("user_id", userID))

	return post, nil
}

// GetPost retrieves a single post by ID.
func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	post, err := s.postRepo.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	return post, nil
}

// GetUserPosts retrieves all posts owned by a user, newest first.
func (s *postService) GetUserPosts(ctx context.Context, userID string) ([]*entity.Post, error) {
	return s.postRepo.FindPostsByUser(ctx, userID)
}

// DeletePost removes a post. Only the owner may delete it.
func (s *postService) DeletePost(ctx context.Context, userID string, id uuid.UUID) error {
	post, err := s.postRepo.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	if post.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := s.postRepo.DeletePost(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			// Deleted between the ownership check and here. Same outcome.
			return nil
		}

		return err
	}

	s.logger.InfoContext(ctx, "post deleted",
		slog.String("post_id", id.String()),
		slog.String("user_id", userID))

	return nil
}

// GeneratePostQR renders a shareable QR code for an existing post.
func (s *postService) GeneratePostQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := s.postRepo.FindPostByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	png, err := s.qrService.GeneratePostQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "generate post QR code")
	}

	return png, nil
}
