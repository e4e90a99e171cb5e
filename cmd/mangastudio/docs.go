package main

// General API documentation for swaggo. Run `swag init -g cmd/mangastudio/docs.go` to regenerate docs.
//
// @title           mangastudio API
// @version         1.0
// @description     HTTP API for validating locally stored model assets against the models manifest.
//
// @contact.name   mangastudio maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
