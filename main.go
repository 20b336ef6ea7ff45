package main

import (
	"github.com/campusgate/uniportal/app"
	"github.com/gofiber/fiber/v2/log"
)

func main() {
	// setup and run app
	if err := app.SetupAndRunServer(); err != nil {
		log.Trace(err)
		panic(err)
	}
}
