package searchengine

// Public tuning constants shared across the package.
const (
	// MaxResultDocumentCount caps the number of documents FindTopDocuments
	// returns for a single query.
	MaxResultDocumentCount = 5

	// EPS is the floating-point tolerance for relevance comparisons: two
	// relevances within EPS of each other are considered tied and broken by
	// descending rating instead.
	EPS = 1e-6

	// ShardCount is the fixed number of shards used by the concurrent
	// accumulator during parallel relevance scoring.
	ShardCount = shardCount
)
