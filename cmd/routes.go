package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := alice.New(app.requireAuth)
	optionalAuthMiddleware := alice.New(app.optionalAuth)

	mux := pat.New()

	mux.Post("/user/sign_up", http.HandlerFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", http.HandlerFunc(app.userHandler.SignIn))
	mux.Post("/user/log_out/:id", authMiddleware.ThenFunc(app.userHandler.LogOut))

	mux.Post("/property", authMiddleware.ThenFunc(app.propertyHandler.CreateProperty))
	mux.Get("/property", authMiddleware.ThenFunc(app.propertyHandler.GetAllProperties))
	mux.Get("/property/published", optionalAuthMiddleware.ThenFunc(app.propertyHandler.GetPublishedProperties))
	mux.Get("/property/owner", authMiddleware.ThenFunc(app.propertyHandler.GetOwnerProperties))
	mux.Add("PATCH", "/property/update/:id", authMiddleware.ThenFunc(app.propertyHandler.UpdateProperty))
	mux.Put("/property/updateStatus/:id", authMiddleware.ThenFunc(app.propertyHandler.UpdatePropertyStatus))
	mux.Put("/property/like/:id", authMiddleware.ThenFunc(app.favoriteHandler.ToggleFavorite))
	mux.Del("/property/delete/:id", authMiddleware.ThenFunc(app.propertyHandler.DeleteProperty))

	return standardMiddleware.Then(mux)
}
