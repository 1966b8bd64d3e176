package publisher

import (
	"context"

	"github.com/isaireyesmejia/camion-tracker/module/core/domain"
)

type LocationEventPublisher interface {
	PublishRegistered(ctx context.Context, event *domain.LocationRegistered) error
}
