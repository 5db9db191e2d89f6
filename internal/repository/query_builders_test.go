package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"feedback_service/internal/domain"
)

func TestBuildListFeedbackQuery(t *testing.T) {
	t.Run("NoFilter", func(t *testing.T) {
		query, args := buildListFeedbackQuery(domain.FeedbackFilter{})
		assert.NotContains(t, query, "WHERE")
		assert.NotContains(t, query, "LIMIT")
		assert.Contains(t, query, "ORDER BY created_at DESC")
		assert.Empty(t, args)
	})

	t.Run("AllFilters", func(t *testing.T) {
		submitter := uuid.New()
		target := uuid.New()
		before := time.Now()

		query, args := buildListFeedbackQuery(domain.FeedbackFilter{
			SubmitterID:   submitter,
			TargetID:      target,
			Statuses:      []domain.FeedbackStatus{domain.FeedbackStatusUnderReview},
			Sentiments:    []domain.Sentiment{domain.SentimentNegative, domain.SentimentNeutral},
			Search:        " 50%_off ",
			CreatedBefore: before,
			Limit:         10,
		})

		assert.Contains(t, query, "submitter_id = $1")
		assert.Contains(t, query, "target_id = $2")
		assert.Contains(t, query, "status = ANY($3)")
		assert.Contains(t, query, "sentiment = ANY($4)")
		assert.Contains(t, query, "body ILIKE $5 OR subject ILIKE $5 OR semester ILIKE $5 OR reason ILIKE $5")
		assert.Contains(t, query, "created_at < $6")
		assert.Contains(t, query, "LIMIT $7")
		assert.Equal(t, 1, strings.Count(query, "WHERE"))

		assert.Equal(t, []any{
			submitter,
			target,
			[]string{"under_review"},
			[]string{"negative", "neutral"},
			`%50\%\_off%`,
			before,
			10,
		}, args)
	})
}
