package main

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Arallon-co/bettermeet/configs"
	"github.com/Arallon-co/bettermeet/internal/db"
	"github.com/Arallon-co/bettermeet/internal/db/models"
	"github.com/Arallon-co/bettermeet/internal/db/repositories"
	"github.com/Arallon-co/bettermeet/internal/di"
)

func main() {
	_ = godotenv.Load()

	config, err := configs.LoadPollCleanupServiceConfig()
	logger := di.NewLogger(config.App, config.Logger)
	defer logger.Sync()

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	if config.Retention.Days <= 0 {
		logger.Info("poll retention disabled, nothing to do")
		return
	}

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	pollRepository := repositories.NewPollRepository(database)

	s := gocron.NewScheduler(time.UTC)

	s.Cron(config.Retention.CronSpec).Do(func() {
		deleteExpiredPolls(pollRepository, config.Retention.Days, logger)
	})

	s.StartBlocking()
}

func deleteExpiredPolls(pollRepository repositories.PollRepository, retentionDays int, logger *zap.SugaredLogger) {
	ctx := context.Background()
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	cutoffDate := cutoff.Format("2006-01-02")

	logger.Infow("sweeping expired polls", "cutoff", cutoff)

	polls, err := pollRepository.GetManyCreatedBetween(ctx, time.Time{}, cutoff)
	if err != nil {
		logger.Errorw("failed to list expired polls", "error", err)
		return
	}

	if len(polls) == 0 {
		logger.Info("no expired polls")
		return
	}

	deleted := 0
	for _, poll := range polls {
		// An old poll whose meeting dates are still ahead is not expired.
		if newest := newestSlotDate(poll); newest >= cutoffDate {
			logger.Infow("skipping poll with upcoming slots", "pollID", poll.ID, "newestSlotDate", newest)
			continue
		}

		if err := pollRepository.Delete(ctx, poll.ID); err != nil {
			logger.Errorw("failed to delete poll", "pollID", poll.ID, "error", err)
			continue
		}
		deleted++
	}

	logger.Infow("sweep finished", "deleted", deleted, "total", len(polls))
}

// newestSlotDate returns the latest slot date of the poll, or "" when the
// poll has no slots. ISO dates compare correctly as strings.
func newestSlotDate(poll *models.Poll) string {
	newest := ""
	for _, slot := range poll.TimeSlots {
		if slot.Date > newest {
			newest = slot.Date
		}
	}
	return newest
}
