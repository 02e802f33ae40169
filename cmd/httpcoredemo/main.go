// Command httpcoredemo is a minimal embedder of httpcore: a single
// Handler dispatching on method and path, mirroring cmd/server.go's
// ping/get/post handlers.
package main

import (
	"log"

	"github.com/corvid-labs/httpcore"
	"github.com/corvid-labs/httpcore/request"
	"github.com/corvid-labs/httpcore/response"
)

func main() {
	handler := httpcore.HandlerFunc(func(resp *response.Response, req *request.Request) {
		switch {
		case req.Path == "/ping":
			pingHandler(resp, req)
		case req.Path == "/" && req.Method == "POST":
			postHandler(resp, req)
		case req.Path == "/":
			getHandler(resp, req)
		default:
			notFoundHandler(resp, req)
		}
	})

	cfg := httpcore.NewConfig(&httpcore.Config{Address: ":8080"})
	log.Printf("httpcoredemo listening on %s", cfg.Address)
	if err := httpcore.NewServer(&cfg, handler).ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

func notFoundHandler(resp *response.Response, req *request.Request) {
	resp.NotFound()
	resp.WriteString("404 Not Found")
}

func pingHandler(resp *response.Response, req *request.Request) {
	resp.WriteString("PONG")
}

func getHandler(resp *response.Response, req *request.Request) {
	resp.WriteString("GET")
}

func postHandler(resp *response.Response, req *request.Request) {
	name, _ := req.Body["name"].AsString()
	resp.WriteString("POST " + name)
}
