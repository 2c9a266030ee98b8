package main

import "github.com/artefakt/archive-api/cmd"

// @title           Heritage Archive API
// @version         1.0.0
// @description     Media archive management API for a cultural organization
// @contact.name    API Support
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token issued by /api/v1/auth/login
func main() {
	cmd.Execute()
}
