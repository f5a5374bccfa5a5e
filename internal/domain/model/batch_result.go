package model

import "weather-dashboard/internal/domain/model/external"

// BatchResult partitions a multi-city lookup into successes and failures.
type BatchResult struct {
	Successful      map[string]*external.CurrentWeatherResponse `json:"successful"`
	Errors          map[string]string                           `json:"errors"`
	TotalRequested  int                                         `json:"total_requested"`
	SuccessfulCount int                                         `json:"successful_count"`
	ErrorCount      int                                         `json:"error_count"`
	// Truncated is set by callers that cap the city list before the lookup.
	Truncated bool `json:"truncated,omitempty"`
}

func NewBatchResult(total int) *BatchResult {
	return &BatchResult{
		Successful:     make(map[string]*external.CurrentWeatherResponse),
		Errors:         make(map[string]string),
		TotalRequested: total,
	}
}

func (b *BatchResult) AddSuccess(city string, reading *external.CurrentWeatherResponse) {
	b.Successful[city] = reading
	b.SuccessfulCount = len(b.Successful)
}

func (b *BatchResult) AddError(city string, err error) {
	b.Errors[city] = err.Error()
	b.ErrorCount = len(b.Errors)
}
