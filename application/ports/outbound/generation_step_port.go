package outbound

import (
	"context"
	"seo-blog-generator/domain"
)

type GenerationStep interface {
	Name() string
	Requires() []domain.Field
	Produces() domain.Field
	Run(ctx context.Context, blog domain.BlogContext) (domain.BlogContext, error)
}
