package main

import (
	"os"

	"threadline/web/internal/app"
)

// @title                       Threadline Web API
// @version                     1.0
// @description                 Backend-for-frontend of the Threadline marketplace.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	os.Exit(app.Run())
}
