package repositories

import (
	"context"
	"net/http"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/google/uuid"

	"github.com/Arallon-co/bettermeet/internal/apperrors"
	"github.com/Arallon-co/bettermeet/internal/db/models"
)

type pollRepository struct {
	repository
}

type PollRepository interface {
	Create(ctx context.Context, poll *models.Poll, slots []*models.TimeSlot) (*models.Poll, error)
	GetOne(ctx context.Context, pollID string) (*models.Poll, error)
	Update(ctx context.Context, pollID string, title, description *string) (*models.Poll, error)
	Delete(ctx context.Context, pollID string) error
	GetManyCreatedBetween(ctx context.Context, start, end time.Time) ([]*models.Poll, error)
}

func NewPollRepository(db *pg.DB) PollRepository {
	return &pollRepository{
		repository: repository{
			db: db,
		},
	}
}

// Create inserts the poll and its time slots in one transaction; a poll
// never exists without its slots.
func (r *pollRepository) Create(ctx context.Context, poll *models.Poll, slots []*models.TimeSlot) (*models.Poll, error) {
	if poll.ID == "" {
		poll.ID = uuid.NewString()
	}

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.Model(poll).Insert(); err != nil {
			return err
		}

		for _, slot := range slots {
			slot.PollID = poll.ID
			if slot.ID == "" {
				slot.ID = uuid.NewString()
			}
		}

		if len(slots) == 0 {
			return nil
		}

		_, err := tx.Model(&slots).Insert()
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.CodePollNotFound)
	}

	return r.GetOne(ctx, poll.ID)
}

func (r *pollRepository) GetOne(ctx context.Context, pollID string) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.ModelContext(ctx, poll).
		Relation("TimeSlots", func(q *orm.Query) (*orm.Query, error) {
			return q.Order("date ASC", "start_time ASC"), nil
		}).
		Relation("Participants", func(q *orm.Query) (*orm.Query, error) {
			return q.Order("created_at ASC"), nil
		}).
		Relation("Participants.Availability").
		Where("poll.id = ?", pollID).
		Select()
	if err != nil {
		return nil, translateError(err, apperrors.CodePollNotFound)
	}

	return poll, nil
}

func (r *pollRepository) Update(ctx context.Context, pollID string, title, description *string) (*models.Poll, error) {
	query := r.db.ModelContext(ctx, (*models.Poll)(nil)).
		Where("id = ?", pollID).
		Set("updated_at = now()")

	if title != nil {
		query = query.Set("title = ?", *title)
	}
	if description != nil {
		query = query.Set("description = ?", *description)
	}

	result, err := query.Update()
	if err != nil {
		return nil, translateError(err, apperrors.CodePollNotFound)
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.New(http.StatusNotFound, apperrors.CodePollNotFound, "")
	}

	return r.GetOne(ctx, pollID)
}

func (r *pollRepository) Delete(ctx context.Context, pollID string) error {
	result, err := r.db.ModelContext(ctx, (*models.Poll)(nil)).
		Where("id = ?", pollID).
		Delete()
	if err != nil {
		return translateError(err, apperrors.CodePollNotFound)
	}
	if result.RowsAffected() == 0 {
		return apperrors.New(http.StatusNotFound, apperrors.CodePollNotFound, "")
	}

	return nil
}

// GetManyCreatedBetween serves the retention sweep and analytics; slots
// and participants are loaded so callers can inspect them before acting.
func (r *pollRepository) GetManyCreatedBetween(ctx context.Context, start, end time.Time) ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)

	err := r.db.ModelContext(ctx, &polls).
		Relation("TimeSlots").
		Relation("Participants").
		Where("poll.created_at >= ?", start).
		Where("poll.created_at <= ?", end).
		Order("created_at DESC").
		Select()
	if err != nil {
		return nil, translateError(err, apperrors.CodePollNotFound)
	}

	return polls, nil
}
