package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"feedback_service/internal/domain"
)

const feedbackColumns = `
	id, submitter_id, target_id,
	subject, semester, reason, body,
	sentiment, status, admin_note,
	created_at, edited_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildListFeedbackQuery(filter domain.FeedbackFilter) (string, []any) {
	var where []string
	var args []any
	argIdx := 1

	if filter.SubmitterID != uuid.Nil {
		where = append(where, fmt.Sprintf("submitter_id = $%d", argIdx))
		args = append(args, filter.SubmitterID)
		argIdx++
	}
	if filter.TargetID != uuid.Nil {
		where = append(where, fmt.Sprintf("target_id = $%d", argIdx))
		args = append(args, filter.TargetID)
		argIdx++
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		where = append(where, fmt.Sprintf("status = ANY($%d)", argIdx))
		args = append(args, statuses)
		argIdx++
	}
	if len(filter.Sentiments) > 0 {
		sentiments := make([]string, 0, len(filter.Sentiments))
		for _, s := range filter.Sentiments {
			sentiments = append(sentiments, string(s))
		}
		where = append(where, fmt.Sprintf("sentiment = ANY($%d)", argIdx))
		args = append(args, sentiments)
		argIdx++
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		where = append(where, fmt.Sprintf(
			"(body ILIKE $%[1]d OR subject ILIKE $%[1]d OR semester ILIKE $%[1]d OR reason ILIKE $%[1]d)",
			argIdx,
		))
		args = append(args, "%"+likeEscaper.Replace(search)+"%")
		argIdx++
	}
	if !filter.CreatedBefore.IsZero() {
		where = append(where, fmt.Sprintf("created_at < $%d", argIdx))
		args = append(args, filter.CreatedBefore)
		argIdx++
	}

	query := "SELECT" + feedbackColumns + "\nFROM feedback\n"
	if len(where) > 0 {
		query += "WHERE " + strings.Join(where, " AND ") + "\n"
	}
	query += "ORDER BY created_at DESC, id DESC\n"

	if filter.Limit > 0 {
		query += fmt.Sprintf("LIMIT $%d\n", argIdx)
		args = append(args, filter.Limit)
	}

	return query, args
}
