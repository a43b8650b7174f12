package dashboard

import (
	"time"

	"github.com/WareOnGo/wag-dashboard/core/server"
	"github.com/WareOnGo/wag-dashboard/integration/database/pg"
	"github.com/WareOnGo/wag-dashboard/integration/database/redis"
	"github.com/WareOnGo/wag-dashboard/integration/storage/s3"
)

// Config aggregates every component's configuration so the whole application
// loads from the environment in one call.
type Config struct {
	DB     pg.Config
	Redis  redis.Config
	S3     s3.Config
	Server server.Config

	AppName  string `env:"APP_NAME" envDefault:"wag-dashboard"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// AuthSecret signs and verifies the session JWT handed over by the
	// login service through the auth callback.
	AuthSecret string `env:"AUTH_JWT_SECRET,required"`
	// LoginURL receives the user when the callback token is missing or invalid.
	LoginURL string `env:"AUTH_LOGIN_URL" envDefault:"/login"`

	SessionCookie string        `env:"SESSION_COOKIE_NAME" envDefault:"wag_session"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}
