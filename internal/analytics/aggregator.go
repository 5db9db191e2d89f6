// Package analytics reduces feedback collections into dashboard figures.
// It never queries storage: callers pass already filtered items.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"feedback_service/internal/domain"
)

const (
	DefaultTrendMonths = 6
	DefaultTopReasons  = 6
	OtherReason        = "Other"
	monthLabelLayout   = "Jan 2006"
)

type Aggregator struct {
	clock clockwork.Clock
}

func NewAggregator(clock clockwork.Clock) *Aggregator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Aggregator{clock: clock}
}

func (a *Aggregator) KPI(items []*domain.Feedback) domain.KPI {
	kpi := domain.KPI{Total: len(items)}
	for _, item := range items {
		switch item.Sentiment {
		case domain.SentimentPositive:
			kpi.Positive++
		case domain.SentimentNeutral:
			kpi.Neutral++
		case domain.SentimentNegative:
			kpi.Negative++
		}
	}
	return kpi
}

// Trend buckets items by calendar month (UTC) of CreatedAt. The window ends
// at the current month and always has exactly months entries, oldest first.
func (a *Aggregator) Trend(items []*domain.Feedback, months int) domain.Trend {
	if months <= 0 {
		months = DefaultTrendMonths
	}

	now := a.clock.Now().UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := current.AddDate(0, -(months - 1), 0)

	trend := domain.Trend{
		Labels:   make([]string, months),
		Positive: make([]int, months),
		Neutral:  make([]int, months),
		Negative: make([]int, months),
	}
	for i := range months {
		trend.Labels[i] = start.AddDate(0, i, 0).Format(monthLabelLayout)
	}

	for _, item := range items {
		created := item.CreatedAt.UTC()
		idx := (created.Year()-start.Year())*12 + int(created.Month()) - int(start.Month())
		if idx < 0 || idx >= months {
			continue
		}
		switch item.Sentiment {
		case domain.SentimentPositive:
			trend.Positive[idx]++
		case domain.SentimentNeutral:
			trend.Neutral[idx]++
		case domain.SentimentNegative:
			trend.Negative[idx]++
		}
	}

	return trend
}

// TopReasons ranks reasons by frequency. Ties keep first-seen order.
func (a *Aggregator) TopReasons(items []*domain.Feedback, k int) []domain.ReasonCount {
	if k <= 0 {
		k = DefaultTopReasons
	}

	counts := make([]domain.ReasonCount, 0)
	index := make(map[string]int)
	for _, item := range items {
		reason := NormalizeReason(item.Reason)
		if i, ok := index[reason]; ok {
			counts[i].Count++
			continue
		}
		index[reason] = len(counts)
		counts = append(counts, domain.ReasonCount{Reason: reason, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > k {
		counts = counts[:k]
	}
	return counts
}

func (a *Aggregator) SentimentBreakdown(kpi domain.KPI) []domain.SentimentCount {
	return []domain.SentimentCount{
		{Label: "Positive", Count: kpi.Positive},
		{Label: "Neutral", Count: kpi.Neutral},
		{Label: "Negative", Count: kpi.Negative},
	}
}

func NormalizeReason(reason string) string {
	normalized := strings.Join(strings.Fields(reason), " ")
	if normalized == "" {
		return OtherReason
	}
	return normalized
}
