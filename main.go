package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"github.com/pereiraj52/TaX-Ray-Canada/internal/handler"
	"github.com/pereiraj52/TaX-Ray-Canada/internal/jurisdiction"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reg := jurisdiction.Default()
	if path := os.Getenv("JURISDICTION_PROFILES"); path != "" {
		var err error
		reg, err = jurisdiction.LoadOverrides(path)
		if err != nil {
			log.Fatalf("Loading jurisdiction profiles failed: %v", err)
		}
		log.Printf("Loaded jurisdiction profile overrides from %s", path)
	}

	h := handler.New(reg)

	log.Printf("Tax engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, h.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
