// internal/scheduler/reminder.go
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go_5_flash_keep/internal/config"
	"go_5_flash_keep/internal/repository"
	"go_5_flash_keep/internal/service"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// ReminderScheduler はレビュー対象カードを持つ学習者へ毎日リマインダーメールを送る
// バックグラウンドジョブです。スケジューラ本体（srs / session）には手を入れず、
// 読み取り専用のレポーティングとして外側に載せています。
type ReminderScheduler struct {
	scheduler   *gocron.Scheduler
	db          *gorm.DB
	learnerRepo repository.LearnerRepository
	cardRepo    repository.CardRepository
	mailer      service.Mailer
	cfg         *config.Config
	logger      *slog.Logger
}

func New(db *gorm.DB, learnerRepo repository.LearnerRepository, cardRepo repository.CardRepository, mailer service.Mailer, cfg *config.Config, logger *slog.Logger) *ReminderScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderScheduler{
		scheduler:   gocron.NewScheduler(time.Local),
		db:          db,
		learnerRepo: learnerRepo,
		cardRepo:    cardRepo,
		mailer:      mailer,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start は毎日設定時刻のリマインダージョブを登録し、非同期で実行を開始します。
func (s *ReminderScheduler) Start() error {
	_, err := s.scheduler.Every(1).Day().At(s.cfg.Reminder.At).Do(s.sendReminders)
	if err != nil {
		return fmt.Errorf("scheduling reminder job: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("Reminder scheduler started", "at", s.cfg.Reminder.At)
	return nil
}

func (s *ReminderScheduler) Stop() {
	s.scheduler.Stop()
}

func (s *ReminderScheduler) sendReminders() {
	ctx := context.Background()
	now := time.Now()

	learners, err := s.learnerRepo.ListActive(ctx, s.db)
	if err != nil {
		s.logger.Error("Reminder job: failed to list learners", "error", err)
		return
	}

	sent := 0
	for _, learner := range learners {
		count, err := s.cardRepo.CountDueByLearner(ctx, s.db, learner.LearnerID, now)
		if err != nil {
			s.logger.Error("Reminder job: failed to count due cards", "error", err, "learner_id", learner.LearnerID)
			continue
		}
		if count == 0 {
			continue
		}

		subject := fmt.Sprintf("今日の復習: %d枚のカードが待っています", count)
		body := fmt.Sprintf("%s さん\n\n復習待ちのカードが %d 枚あります。\n今日のセッションを始めましょう。\n", learner.Name, count)
		if err := s.mailer.Send(ctx, learner.Email, subject, body); err != nil {
			// 1人への送信失敗で他の学習者へのリマインダーを止めない
			s.logger.Error("Reminder job: failed to send mail", "error", err, "learner_id", learner.LearnerID)
			continue
		}
		sent++
	}

	s.logger.Info("Reminder job finished", "learners", len(learners), "sent", sent)
}
