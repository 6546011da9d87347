package main

//go:generate swag init -g docs.go -d ./,../../internal/handler -o ../../docs

// @title Prop Firm Directory API
// @version 1.0
// @description Content management and public catalog API for prop trading and futures trading firms.

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
