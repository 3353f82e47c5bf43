package main

import (
	"context"

	"github.com/shandysiswandi/goadvice/internal/app"
)

func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal

	application.Stop(context.Background()) // Stop gracefully within the shutdown timeout
}
