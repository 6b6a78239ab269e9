package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"audiobookify/internal/opds"
	"audiobookify/internal/response"
	"audiobookify/internal/storage/books"
	"audiobookify/internal/types"
)

func Handler(br books.Repository, rr *response.Responder, l *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/books", func(w http.ResponseWriter, r *http.Request) {
		rows, err := br.GetAll(r.Context())
		if err != nil {
			rr.RespondAndLogError(w, r.Context(), err)
			return
		}

		if rows == nil {
			rows = make([]types.Book, 0)
		}

		rr.SendJson(w, r.Context(), struct {
			Books []types.Book `json:"books"`
		}{Books: rows})
	})

	r.Get("/books/{id}", func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			rr.RespondAndLogCustom(w, r.Context(), fmt.Errorf("invalid book id %q", raw),
				slog.LevelDebug, http.StatusBadRequest)
			return
		}

		row, err := br.GetById(r.Context(), id)
		if errors.Is(err, books.ErrNotFound) {
			rr.RespondAndLogCustom(w, r.Context(), err, slog.LevelInfo, http.StatusNotFound)
			return
		} else if err != nil {
			rr.RespondAndLogError(w, r.Context(), err)
			return
		}

		rr.SendJson(w, r.Context(), struct {
			Book *types.Book `json:"book"`
		}{Book: row})
	})

	r.Get("/opds", func(w http.ResponseWriter, r *http.Request) {
		rows, err := br.GetAll(r.Context())
		if err != nil {
			rr.RespondAndLogError(w, r.Context(), err)
			return
		}

		base := strings.TrimSuffix(r.URL.Path, "/opds")
		feed := opds.BuildFeed(rows, r.URL.Path, func(id int) string {
			return base + "/books/" + strconv.Itoa(id)
		}, l)

		bs, err := opds.Marshal(feed)
		if err != nil {
			rr.RespondAndLogError(w, r.Context(), err)
			return
		}

		rr.SendXml(w, r.Context(), opds.ContentType, bs)
	})

	return r
}
