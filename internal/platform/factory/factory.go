package factory

import (
	"fmt"

	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan"
	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/redisfactory"
	"github.com/kelseyhightower/envconfig"
)

type Factory struct {
	redisFactory *redisfactory.Factory
	platforms    map[string]any
}

func (f *Factory) GetPlatform(name string) (any, error) {
	_, ok := f.platforms[name]

	if !ok {
		switch name {

		// Register all platforms here
		case "tourplan":
			var configuration schema.TourplanConfiguration
			if err := envconfig.Process("", &configuration); err != nil {
				return nil, err
			}

			var mailerConfiguration schema.MailerConfiguration
			if err := envconfig.Process("", &mailerConfiguration); err != nil {
				return nil, err
			}

			f.platforms[name] = tourplan.New(
				f.redisFactory.ResponsesCacheClient(),
				configuration,
				mailerConfiguration,
			)
		default:
			return nil, fmt.Errorf("platform %s not found", name)
		}
	}

	return f.platforms[name], nil
}

func NewFactory(redisFactory *redisfactory.Factory) *Factory {
	return &Factory{
		redisFactory: redisFactory,
		platforms:    make(map[string]any),
	}
}
