package postgres

import (
	"context"
	"time"

	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// conversationRepository implements the domain's ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

// FindByPostAndPair retrieves the conversation for a post and an unordered
// participant pair. Lookup goes through the normalized pair columns, so
// argument order does not matter.
func (repo *conversationRepository) FindByPostAndPair(ctx context.Context, postID uuid.UUID, userA, userB string) (*entity.Conversation, error) {
	lo, hi := orderPair(userA, userB)

	var conversationM model.ConversationModel
	if err := repo.db.WithContext(ctx).
		Where("post_id = ? AND participant_lo = ? AND participant_hi = ?", postID, lo, hi).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by post and pair")
	}

	return toConversationDomain(&conversationM), nil
}

// FindLatestByPostAndParticipant retrieves the most recent conversation on a
// post that the user takes part in. A post owner can sit on either side of
// the pair, so the match covers both columns.
func (repo *conversationRepository) FindLatestByPostAndParticipant(ctx context.Context, postID uuid.UUID, userID string) (*entity.Conversation, error) {
	var conversationM model.ConversationModel
	if err := repo.db.WithContext(ctx).
		Where("post_id = ? AND (sender_id = ? OR receiver_id = ?)", postID, userID, userID).
		Order("created_at DESC").
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by post and participant")
	}

	return toConversationDomain(&conversationM), nil
}

// CreateIfAbsent atomically inserts the conversation unless one already
// exists for its canonical key. The insert carries ON CONFLICT DO NOTHING on
// the pair index; when the insert is a no-op the pre-existing row is read
// back. Two racing callers both end up with the same row, exactly one of
// them with created == true.
func (repo *conversationRepository) CreateIfAbsent(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, bool, error) {
	conversationM := fromConversationDomain(conversation)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "post_id"}, {Name: "participant_lo"}, {Name: "participant_hi"},
			},
			DoNothing: true,
		}).
		Create(conversationM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError("failed to create conversation")
	}

	if result.RowsAffected > 0 {
		return toConversationDomain(conversationM), true, nil
	}

	// Lost the race or the row predates us. Either way the winner is the row
	// under the canonical key.
	existing, err := repo.FindByPostAndPair(ctx, conversation.PostID, conversation.SenderID, conversation.ReceiverID)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to load existing conversation after conflict")
	}

	return existing, false, nil
}

// FindConversationByID retrieves a conversation by its unique ID.
func (repo *conversationRepository) FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by ID")
	}

	return toConversationDomain(&conversationM), nil
}

// ListByParticipant retrieves conversations the user takes part in, newest
// first, with optional keyset pagination on created_at.
func (repo *conversationRepository) ListByParticipant(ctx context.Context, userID string, limit int, before *time.Time) ([]*entity.Conversation, error) {
	query := repo.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID)
	if before != nil {
		query = query.Where("created_at < ?", *before)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var conversationModels []*model.ConversationModel
	if err := query.Order("created_at DESC").Find(&conversationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list conversations by participant")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, nil
}

// UpdateStatus sets the conversation status.
func (repo *conversationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ConversationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError("failed to update conversation status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// orderPair returns the two participant IDs in lexical order.
func orderPair(userA, userB string) (lo, hi string) {
	if userA <= userB {
		return userA, userB
	}

	return userB, userA
}

// toConversationDomain converts a GORM model to a domain entity.
func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	return &entity.Conversation{
		ID:         data.ID,
		PostID:     data.PostID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Status:     entity.ConversationStatus(data.Status),
		CreatedAt:  data.CreatedAt,
	}
}

// fromConversationDomain converts a domain entity to a GORM model, filling
// the normalized pair columns.
func fromConversationDomain(data *entity.Conversation) *model.ConversationModel {
	lo, hi := orderPair(data.SenderID, data.ReceiverID)

	return &model.ConversationModel{
		ID:            data.ID,
		PostID:        data.PostID,
		SenderID:      data.SenderID,
		ReceiverID:    data.ReceiverID,
		ParticipantLo: lo,
		ParticipantHi: hi,
		Status:        string(data.Status),
		CreatedAt:     data.CreatedAt,
	}
}
