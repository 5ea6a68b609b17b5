package config

import "os"

// parseEnv overlays Config fields from environment variables. Unset
// variables leave the current value untouched.
//
// Recognized variables:
//
//	PORT              bind port for the always-on form (e.g. "4000")
//	AWS_REGION        AWS region
//	STORAGE_DRIVER    "dynamo" or "postgres"
//	BLOG_TABLE_NAME   DynamoDB table name
//	DATABASE_DSN      PostgreSQL DSN
//	MEDIA_BUCKET      S3 bucket for media uploads
//	MEDIA_BASE_URL    public base URL media keys are joined onto
//	MEDIA_PREFIX      key prefix for uploaded objects
//	LEADS_TOPIC_ARN   SNS topic for lead notifications
//	FRONTEND_ORIGIN   extra allowed CORS origin
//	ADMIN_JWT_SECRET  HS256 secret guarding /admin on the server form
//	AWS_ENDPOINT_URL  endpoint override for local AWS-compatible stacks
//	AWS_ACCESS_KEY / AWS_SECRET_KEY  static credentials for such stacks
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("PORT"); ok {
		config.Addr = ":" + v
	}
	setIfPresent(&config.Region, "AWS_REGION")
	setIfPresent(&config.StorageDriver, "STORAGE_DRIVER")
	setIfPresent(&config.TableName, "BLOG_TABLE_NAME")
	setIfPresent(&config.DatabaseDSN, "DATABASE_DSN")
	setIfPresent(&config.MediaBucket, "MEDIA_BUCKET")
	setIfPresent(&config.MediaBaseURL, "MEDIA_BASE_URL")
	setIfPresent(&config.MediaPrefix, "MEDIA_PREFIX")
	setIfPresent(&config.LeadsTopicARN, "LEADS_TOPIC_ARN")
	setIfPresent(&config.FrontendOrigin, "FRONTEND_ORIGIN")
	setIfPresent(&config.AdminJWTSecret, "ADMIN_JWT_SECRET")
	setIfPresent(&config.AWSEndpointURL, "AWS_ENDPOINT_URL")
	setIfPresent(&config.AWSAccessKey, "AWS_ACCESS_KEY")
	setIfPresent(&config.AWSSecretKey, "AWS_SECRET_KEY")
}

func setIfPresent(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}
