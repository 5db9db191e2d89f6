package domain

type KPI struct {
	Total    int
	Positive int
	Neutral  int
	Negative int
}

type Trend struct {
	Labels   []string
	Positive []int
	Neutral  []int
	Negative []int
}

type ReasonCount struct {
	Reason string
	Count  int
}

type SentimentCount struct {
	Label string
	Count int
}
