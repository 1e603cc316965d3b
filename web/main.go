// Command web serves scene renders and pixel inspection over HTTP.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-scene-raytracer/web/server"
)

var endpoints = []string{
	"/api/health",
	"/api/scenes",
	"/api/render?scene=default&aa=2&size=512&gamma=1",
	"/api/inspect?scene=default&size=256&x=128&y=128",
}

func main() {
	port := flag.Int("port", 8080, "HTTP port for the render API")
	flag.Parse()

	log.Printf("Scene raytracer API on port %d", *port)
	for _, endpoint := range endpoints {
		log.Printf("  http://localhost:%d%s", *port, endpoint)
	}

	if err := server.NewServer(*port).Start(); err != nil {
		log.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}
