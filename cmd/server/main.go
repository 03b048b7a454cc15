package main

import (
	"github.com/joho/godotenv"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/controllers"
)

func main() {
	_ = godotenv.Load()

	app := controllers.App{}
	app.Initialize()
	app.RunServer()
}
