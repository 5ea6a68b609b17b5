// The lambda form of the backend: API Gateway HTTP API (payload v2) events
// are proxied into the shared router. The engine is built once per cold
// start; storage connections live for the lifetime of the execution
// environment.
package main

import (
	"context"
	"log"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"github.com/dmitrijs2005/blogcrm/internal/app"
	"github.com/dmitrijs2005/blogcrm/internal/config"
	"github.com/dmitrijs2005/blogcrm/internal/logging"
)

var adapter *ginadapter.GinLambdaV2

// normalizePath strips the deployment stage prefix from the raw path so that
// staged gateway URLs (e.g. /prod/posts) hit the same routes as direct
// invocations. The $default stage carries no prefix.
func normalizePath(req *events.APIGatewayV2HTTPRequest) {
	stage := req.RequestContext.Stage
	if stage == "" || stage == "$default" {
		return
	}
	prefix := "/" + stage
	if req.RawPath == prefix || strings.HasPrefix(req.RawPath, prefix+"/") {
		req.RawPath = strings.TrimPrefix(req.RawPath, prefix)
		if req.RawPath == "" {
			req.RawPath = "/"
		}
	}
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	normalizePath(&req)
	return adapter.ProxyWithContext(ctx, req)
}

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	router, _, err := app.BuildRouter(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	adapter = ginadapter.NewV2(router)
	lambda.Start(handler)
}
