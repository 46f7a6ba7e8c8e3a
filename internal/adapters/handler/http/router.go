package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(pollHandler *PollHandler, voteHandler *VoteHandler, commentHandler *CommentHandler, userHandler *UserHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/polls", func(r chi.Router) {
		r.Get("/", pollHandler.ListPolls)
		r.Post("/", pollHandler.CreatePoll)
		r.Post("/vote", voteHandler.Vote)
		r.Get("/{poll_id}/results", voteHandler.Results)
		r.Delete("/{poll_id}", pollHandler.DeletePoll)
		r.Post("/expire/{poll_id}", pollHandler.SetExpiration)
		r.Post("/{poll_id}/options", pollHandler.SetOptions)
		r.Get("/{poll_id}/options", pollHandler.GetOptions)
	})

	r.Route("/comments", func(r chi.Router) {
		r.Post("/", commentHandler.AddComment)
		r.Get("/{pollId}", commentHandler.GetComments)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Post("/", userHandler.CreateUser)
		r.Get("/{id}", userHandler.GetUser)
		r.Put("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
	})

	return r
}
