package outbound

import (
	"context"
	"seo-blog-generator/domain"
)

type DomainProfilePort interface {
	Fetch(ctx context.Context, domainURL string) (*domain.DomainProfile, error)
}
