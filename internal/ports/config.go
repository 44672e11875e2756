package ports

import "github.com/gabrielcapilla/triplay/internal/domain"

type ConfigService interface {
	Load() (domain.Config, error)
}
