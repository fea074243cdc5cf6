package app

import (
	"time"

	"github.com/MichaelRFairhurst/package-config/internal/adapters"
	"github.com/MichaelRFairhurst/package-config/internal/ports"
)

type Service struct {
	Loader ports.ByteLoader
	Clock  func() time.Time
}

func NewService() Service {
	return Service{
		Loader: adapters.NewFileLoaderAdapter(),
		Clock:  time.Now,
	}
}
