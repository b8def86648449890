package pagination

// DefaultLimit is the page size used when none is specified
const DefaultLimit = 10

// MaxLimit is the maximum allowed page size
const MaxLimit = 100
