package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/blogcrm/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   bind address for the always-on form (e.g., ":4000")
//	-t string   DynamoDB table name
//	-d string   PostgreSQL DSN
//	-s string   storage driver ("dynamo" or "postgres")
//	-g string   AWS region
//	-b string   media bucket
//	-u string   media public base URL
//	-o string   extra allowed frontend origin
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-s", "-g", "-b", "-u", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.TableName, "t", config.TableName, "DynamoDB table name")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.StorageDriver, "s", config.StorageDriver, "storage driver")
	fs.StringVar(&config.Region, "g", config.Region, "AWS region")
	fs.StringVar(&config.MediaBucket, "b", config.MediaBucket, "media bucket")
	fs.StringVar(&config.MediaBaseURL, "u", config.MediaBaseURL, "media public base URL")
	fs.StringVar(&config.FrontendOrigin, "o", config.FrontendOrigin, "extra allowed frontend origin")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
