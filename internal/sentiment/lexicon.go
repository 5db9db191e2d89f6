package sentiment

var defaultPositive = []string{
	"excellent", "great", "good", "helpful", "clear", "clearly", "amazing", "awesome",
	"fantastic", "engaging", "interesting", "knowledgeable", "supportive", "patient",
	"friendly", "organized", "organised", "informative", "inspiring", "enjoyable",
	"enjoyed", "love", "loved", "best", "brilliant", "outstanding", "wonderful",
	"approachable", "thorough", "useful", "recommend", "motivating", "insightful",
	"effective", "passionate", "fair", "responsive", "happy", "satisfied", "thanks",
	"appreciate", "appreciated", "perfect", "nice", "kind", "valuable",
	"well explained", "well structured", "well organized", "well prepared",
	"easy to understand", "easy to follow", "learned a lot", "learnt a lot",
	"thank you",
}

var defaultNegative = []string{
	"bad", "poor", "poorly", "boring", "confusing", "confused", "unclear", "terrible",
	"awful", "horrible", "worst", "worse", "rude", "unhelpful", "useless",
	"disorganized", "disorganised", "unorganized", "unfair", "hate", "hated",
	"dislike", "disappointing", "disappointed", "frustrating", "frustrated",
	"monotonous", "unprepared", "unresponsive", "lazy", "incompetent", "irrelevant",
	"messy", "problem", "problems", "issue", "issues", "complaint", "lacking", "dull",
	"rushed", "inconsistent", "late", "slow", "difficult",
	"hard to follow", "hard to understand", "difficult to follow", "too fast",
	"waste of time", "did not explain", "didnt explain",
}

// negators flip the polarity of the next lexicon hit within negationWindow tokens.
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "dont": {}, "doesnt": {}, "didnt": {},
	"isnt": {}, "wasnt": {}, "arent": {}, "werent": {}, "cant": {}, "cannot": {},
	"couldnt": {}, "wont": {}, "wouldnt": {}, "shouldnt": {}, "hardly": {},
	"barely": {}, "neither": {}, "nor": {}, "without": {},
}

const negationWindow = 3
