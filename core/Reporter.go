package core

import "context"

// Reporter publishes annotations produced by a review run.
type Reporter interface {
	Report(ctx context.Context, annotations []Annotation) error
}
