// internal/service/user_stats.go
package service

import (
	"context"

	"wordify/internal/middleware"
	"wordify/internal/model"
	"wordify/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// recalculateUserStats はユーザーの学習統計キャッシュを元データから全件再計算して保存します。
// 差分加算は行わない。部分的に失敗した提出処理があってもここを通れば必ず実値に揃う
func recalculateUserStats(
	ctx context.Context,
	tx *gorm.DB,
	userRepo repository.UserRepository,
	quizRepo repository.QuizRepository,
	progRepo repository.ProgressRepository,
	userID uuid.UUID,
) error {
	logger := middleware.GetLogger(ctx)

	totalQuizzes, err := quizRepo.CountByUser(ctx, tx, userID)
	if err != nil {
		logger.Error("Failed to count quiz sessions for stats", "error", err, "user_id", userID)
		return err
	}

	wordsLearned, err := progRepo.CountByUserAndStatus(ctx, tx, userID, model.StatusMastered)
	if err != nil {
		logger.Error("Failed to count mastered words for stats", "error", err, "user_id", userID)
		return err
	}

	averageScore, err := quizRepo.AverageScoreByUser(ctx, tx, userID)
	if err != nil {
		logger.Error("Failed to compute average score for stats", "error", err, "user_id", userID)
		return err
	}

	return userRepo.Update(ctx, tx, userID, map[string]interface{}{
		"total_quizzes": totalQuizzes,
		"words_learned": wordsLearned,
		"average_score": averageScore,
	})
}
