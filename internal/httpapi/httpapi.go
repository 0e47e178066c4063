// Package httpapi provides a minimal, read-only HTTP surface over a built
// parser's artifacts: the transformed grammar, its FIRST/FOLLOW sets, and the
// LL(1) parse table. It never mutates the grammar or table it serves.
package httpapi

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/RajShah-1/LL1-Parser/internal/grammar"
	"github.com/RajShah-1/LL1-Parser/internal/render"
)

// PathPrefix is the prefix all inspection routes are mounted under.
const PathPrefix = "/inspect/v1"

// API serves the artifacts of a single compiled grammar: a struct of
// dependencies whose http* methods become handlers, with no backend
// service, no auth secret, and no request body decoding — there is nothing
// here to authenticate or mutate.
type API struct {
	BuildID uuid.UUID
	Grammar *grammar.Grammar
	First   grammar.FirstSets
	Follow  grammar.FollowSets
	Table   *grammar.Table
}

// Router builds a chi router exposing a.Grammar/a.First/a.Follow/a.Table as
// plain-text GET endpoints under PathPrefix.
func (a API) Router() chi.Router {
	r := chi.NewRouter()

	r.Route(PathPrefix, func(r chi.Router) {
		r.Get("/grammar", a.httpGrammar())
		r.Get("/first", a.httpFirst())
		r.Get("/follow", a.httpFollow())
		r.Get("/table", a.httpTable())
		r.Get("/build-id", a.httpBuildID())
	})

	return r
}

func (a API) httpGrammar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writePlain(w, render.Grammar(a.Grammar))
	}
}

func (a API) httpFirst() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writePlain(w, render.FirstSets(a.Grammar, a.First))
	}
}

func (a API) httpFollow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writePlain(w, render.FollowSets(a.Grammar, a.Follow))
	}
}

func (a API) httpTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writePlain(w, render.Table(a.Grammar, a.Table))
	}
}

func (a API) httpBuildID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writePlain(w, a.BuildID.String())
	}
}

func writePlain(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Printf("ERROR: httpapi: writing response: %v", err)
	}
}
