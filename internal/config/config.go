// Package config handles configuration for the backend, including defaults,
// environment overlay, and command-line flags. Both deployment forms (the
// always-on server and the per-request function) are configured through the
// same environment variables; flags exist for local runs of the server form.
package config

// Storage driver identifiers.
const (
	DriverDynamo   = "dynamo"
	DriverPostgres = "postgres"
)

// localDevOrigin is always allowed so the Vite dev server can talk to a
// locally running backend.
const localDevOrigin = "http://localhost:5173"

// Config holds runtime settings for the blog-crm backend.
//
// Fields:
//   - Addr: bind address for the always-on HTTP form.
//   - Region: AWS region used for all SDK clients.
//   - StorageDriver: "dynamo" (default) or "postgres".
//   - TableName: DynamoDB table holding posts and leads (dynamo driver).
//   - DatabaseDSN: PostgreSQL DSN (postgres driver).
//   - MediaBucket / MediaBaseURL / MediaPrefix: S3 media upload settings;
//     uploads are rejected as unconfigured until bucket and base URL are set.
//   - LeadsTopicARN: SNS topic for lead notifications; empty disables them.
//   - FrontendOrigin: extra allowed CORS origin on top of the local default.
//   - AdminJWTSecret: when set, the server form verifies HS256 bearer tokens
//     on /admin routes. Leave empty behind an authenticating gateway.
//   - AWSEndpointURL / AWSAccessKey / AWSSecretKey: overrides for local
//     S3/DynamoDB-compatible backends; empty means the SDK default chain.
type Config struct {
	Addr           string
	Region         string
	StorageDriver  string
	TableName      string
	DatabaseDSN    string
	MediaBucket    string
	MediaBaseURL   string
	MediaPrefix    string
	LeadsTopicARN  string
	FrontendOrigin string
	AdminJWTSecret string
	AWSEndpointURL string
	AWSAccessKey   string
	AWSSecretKey   string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":4000"
	c.Region = "eu-west-1"
	c.StorageDriver = DriverDynamo
	c.MediaPrefix = "media/"
}

// AllowedOrigins returns the CORS origins the backend will echo back:
// the built-in localhost dev origin plus the configured frontend origin,
// if any.
func (c *Config) AllowedOrigins() []string {
	origins := []string{localDevOrigin}
	if c.FrontendOrigin != "" {
		origins = append(origins, c.FrontendOrigin)
	}
	return origins
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
