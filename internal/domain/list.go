package domain

// ReadingListResult captures one page of archived readings.
type ReadingListResult struct {
	Items []Reading
	Total int64
}
