package repositories

import (
	"context"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"

	"github.com/Arallon-co/bettermeet/internal/apperrors"
	"github.com/Arallon-co/bettermeet/internal/db/models"
)

type participantRepository struct {
	repository
}

type ParticipantRepository interface {
	CreateWithAvailability(ctx context.Context, pollID string, participant *models.Participant, availability []*models.Availability) (*models.Participant, error)
	GetOne(ctx context.Context, participantID string) (*models.Participant, error)
	Update(ctx context.Context, participantID string, name, email, timezone *string) (*models.Participant, error)
	Delete(ctx context.Context, participantID string) error
	ReplaceAvailability(ctx context.Context, participantID string, availability []*models.Availability) (*models.Participant, error)
}

func NewParticipantRepository(db *pg.DB) ParticipantRepository {
	return &participantRepository{
		repository: repository{
			db: db,
		},
	}
}

// CreateWithAvailability inserts the participant and every availability
// row in one transaction. Duplicate emails are rejected twice: a
// pre-check for a friendly fast path, and the partial unique index on
// (poll_id, email) as the race-proof guard.
func (r *participantRepository) CreateWithAvailability(ctx context.Context, pollID string, participant *models.Participant, availability []*models.Availability) (*models.Participant, error) {
	participant.PollID = pollID
	if participant.ID == "" {
		participant.ID = uuid.NewString()
	}

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if participant.Email != "" {
			count, err := tx.Model((*models.Participant)(nil)).
				Where("poll_id = ?", pollID).
				Where("email = ?", participant.Email).
				Count()
			if err != nil {
				return err
			}
			if count > 0 {
				return apperrors.New(http.StatusConflict, apperrors.CodeDuplicateParticipant, "")
			}
		}

		if _, err := tx.Model(participant).Insert(); err != nil {
			if isIntegrityViolation(err) {
				return apperrors.New(http.StatusConflict, apperrors.CodeDuplicateParticipant, "")
			}
			return err
		}

		for _, avail := range availability {
			avail.ParticipantID = participant.ID
			if avail.ID == "" {
				avail.ID = uuid.NewString()
			}
		}

		if len(availability) == 0 {
			return nil
		}

		_, err := tx.Model(&availability).Insert()
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.CodeParticipantNotFound)
	}

	return r.GetOne(ctx, participant.ID)
}

func (r *participantRepository) GetOne(ctx context.Context, participantID string) (*models.Participant, error) {
	participant := &models.Participant{}

	err := r.db.ModelContext(ctx, participant).
		Relation("Availability").
		Where("participant.id = ?", participantID).
		Select()
	if err != nil {
		return nil, translateError(err, apperrors.CodeParticipantNotFound)
	}

	return participant, nil
}

func (r *participantRepository) Update(ctx context.Context, participantID string, name, email, timezone *string) (*models.Participant, error) {
	// An UPDATE without Set clauses is a go-pg error, not a no-op.
	if name == nil && email == nil && timezone == nil {
		return r.GetOne(ctx, participantID)
	}

	query := r.db.ModelContext(ctx, (*models.Participant)(nil)).
		Where("id = ?", participantID)

	if name != nil {
		query = query.Set("name = ?", *name)
	}
	if email != nil {
		query = query.Set("email = ?", *email)
	}
	if timezone != nil {
		query = query.Set("timezone = ?", *timezone)
	}

	result, err := query.Update()
	if err != nil {
		if isIntegrityViolation(err) {
			return nil, apperrors.New(http.StatusConflict, apperrors.CodeDuplicateParticipant, "")
		}
		return nil, translateError(err, apperrors.CodeParticipantNotFound)
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.New(http.StatusNotFound, apperrors.CodeParticipantNotFound, "")
	}

	return r.GetOne(ctx, participantID)
}

func (r *participantRepository) Delete(ctx context.Context, participantID string) error {
	result, err := r.db.ModelContext(ctx, (*models.Participant)(nil)).
		Where("id = ?", participantID).
		Delete()
	if err != nil {
		return translateError(err, apperrors.CodeParticipantNotFound)
	}
	if result.RowsAffected() == 0 {
		return apperrors.New(http.StatusNotFound, apperrors.CodeParticipantNotFound, "")
	}

	return nil
}

// ReplaceAvailability swaps a participant's whole answer set atomically.
func (r *participantRepository) ReplaceAvailability(ctx context.Context, participantID string, availability []*models.Availability) (*models.Participant, error) {
	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		count, err := tx.Model((*models.Participant)(nil)).
			Where("id = ?", participantID).
			Count()
		if err != nil {
			return err
		}
		if count == 0 {
			return apperrors.New(http.StatusNotFound, apperrors.CodeParticipantNotFound, "")
		}

		if _, err := tx.Model((*models.Availability)(nil)).
			Where("participant_id = ?", participantID).
			Delete(); err != nil {
			return err
		}

		for _, avail := range availability {
			avail.ParticipantID = participantID
			if avail.ID == "" {
				avail.ID = uuid.NewString()
			}
		}

		if len(availability) == 0 {
			return nil
		}

		_, err = tx.Model(&availability).Insert()
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.CodeParticipantNotFound)
	}

	return r.GetOne(ctx, participantID)
}
