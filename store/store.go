package store

import (
	"context"
	"time"
)

var (
	// ContextTimeout bounds every store operation issued on behalf of a request.
	ContextTimeout = time.Duration(20) * time.Second
)

// ResultLimit caps list results. This is a fixed ceiling, not pagination.
const ResultLimit = 1000

type Sort struct {
	Attribute string
	Ascending bool
}

func (s *Sort) Order() int {
	if s.Ascending {
		return 1
	}
	return -1
}

func NewDbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ContextTimeout)
}
