package main

import (
	"testing"

	server "github.com/KanapuramVaishnavi/Core/server"
	"github.com/gin-gonic/gin"
)

func TestRun_CapturesOptions(t *testing.T) {
	isTest = true
	defer func() { isTest = false }()

	var capturedOpts server.Options

	// intercept options so no server actually starts
	startServer = func(opts server.Options) {
		capturedOpts = opts
	}

	main()
	run()

	// handlers must be safe to invoke in test mode
	capturedOpts.JobsHandler()
	capturedOpts.MigrationHandler()
	capturedOpts.WebServerPreHandler(gin.New())
}
