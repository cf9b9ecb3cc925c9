package app

import (
	"net/http"

	"github.com/sholaoke/churchbase/internal/handler"
	"github.com/sholaoke/churchbase/internal/middleware"
	"github.com/sholaoke/churchbase/internal/models"
)

func (app *Application) routes() http.Handler {
	mux := http.NewServeMux()

	mid := middleware.New(app.errorHandler, app.Logger, app.DB.User(), &app.Config)

	h := handler.NewRouteHandler(&handler.RouteHandler{
		DB:         app.DB,
		Config:     &app.Config,
		ErrHandler: app.errorHandler,
		Helper:     app.helper,
		Mailer:     app.Mailer,
		Cache:      app.Cache,
		Uploader:   app.FileUploader,
	})

	admin := func(next http.HandlerFunc) http.Handler {
		return mid.RequireAuthenticatedUser(next)
	}

	mux.HandleFunc("GET /status", h.HandleHealthCheck)

	mux.HandleFunc("POST /auth/login", h.HandleAuthLogin)
	mux.Handle("GET /auth/me", admin(h.HandleAuthMe))
	mux.Handle("POST /auth/users", admin(h.HandleUserCreate))

	// The public website posts contact forms without credentials; everything
	// else under /api requires an authenticated admin.
	mux.HandleFunc("POST /api/contact-submissions", h.HandleContactCreate)
	mux.Handle("GET /api/contact-submissions", admin(h.HandleContactList))
	mux.Handle("GET /api/contact-submissions/{id}", admin(h.HandleContactGet))
	mux.Handle("PATCH /api/contact-submissions/{id}/read", admin(h.HandleContactMarkRead))
	mux.Handle("DELETE /api/contact-submissions/{id}", admin(h.HandleContactDelete))

	for _, route := range []struct {
		segment string
		kind    string
	}{
		{"members", models.PersonKindMember},
		{"ministers", models.PersonKindMinister},
	} {
		base := "/api/" + route.segment
		mux.Handle("POST "+base, admin(h.HandlePersonCreate(route.kind)))
		mux.Handle("GET "+base, admin(h.HandlePersonList(route.kind)))
		mux.Handle("GET "+base+"/export", admin(h.HandlePersonExport(route.kind)))
		mux.Handle("GET "+base+"/{id}", admin(h.HandlePersonGet(route.kind)))
		mux.Handle("GET "+base+"/{id}/complete", admin(h.HandlePersonGetComplete(route.kind)))
		mux.Handle("PUT "+base+"/{id}", admin(h.HandlePersonUpdate(route.kind)))
		mux.Handle("DELETE "+base+"/{id}", admin(h.HandlePersonDelete(route.kind)))
		mux.Handle("GET "+base+"/{id}/qr", admin(h.HandlePersonQRCode(route.kind)))
		mux.Handle("GET "+base+"/{id}/{collection}", admin(h.HandlePersonCollectionGet(route.kind)))
		mux.Handle("PUT "+base+"/{id}/{collection}", admin(h.HandlePersonCollectionReplace(route.kind)))
	}

	mux.Handle("POST /api/churches", admin(h.HandleChurchCreate))
	mux.Handle("GET /api/churches", admin(h.HandleChurchList))
	mux.Handle("GET /api/churches/export", admin(h.HandleChurchExport))
	mux.Handle("GET /api/churches/{id}", admin(h.HandleChurchGet))
	mux.Handle("PUT /api/churches/{id}", admin(h.HandleChurchUpdate))
	mux.Handle("DELETE /api/churches/{id}", admin(h.HandleChurchDelete))

	mux.Handle("POST /api/events", admin(h.HandleEventCreate))
	mux.Handle("GET /api/events", admin(h.HandleEventList))
	mux.Handle("GET /api/events/{id}", admin(h.HandleEventGet))
	mux.Handle("PUT /api/events/{id}", admin(h.HandleEventUpdate))
	mux.Handle("DELETE /api/events/{id}", admin(h.HandleEventDelete))

	mux.Handle("POST /api/locations", admin(h.HandleLocationCreate))
	mux.Handle("GET /api/locations", admin(h.HandleLocationList))
	mux.Handle("GET /api/locations/{id}", admin(h.HandleLocationGet))
	mux.Handle("PUT /api/locations/{id}", admin(h.HandleLocationUpdate))
	mux.Handle("DELETE /api/locations/{id}", admin(h.HandleLocationDelete))

	mux.Handle("POST /api/ministry-ranks", admin(h.HandleRankCreate()))
	mux.Handle("GET /api/ministry-ranks", admin(h.HandleRankList()))
	mux.Handle("GET /api/ministry-ranks/{id}", admin(h.HandleRankGet()))
	mux.Handle("PUT /api/ministry-ranks/{id}", admin(h.HandleRankUpdate()))
	mux.Handle("DELETE /api/ministry-ranks/{id}", admin(h.HandleRankDelete()))

	mux.Handle("POST /api/ministry-skills", admin(h.HandleSkillCreate()))
	mux.Handle("GET /api/ministry-skills", admin(h.HandleSkillList()))
	mux.Handle("GET /api/ministry-skills/{id}", admin(h.HandleSkillGet()))
	mux.Handle("PUT /api/ministry-skills/{id}", admin(h.HandleSkillUpdate()))
	mux.Handle("DELETE /api/ministry-skills/{id}", admin(h.HandleSkillDelete()))

	mux.Handle("GET /api/dashboard/stats", admin(h.HandleDashboardStats))
	mux.Handle("GET /api/dashboard/growth", admin(h.HandleDashboardGrowth))

	mux.Handle("POST /api/uploads", admin(h.HandleFileUpload))

	return mid.LogAccess(mid.RecoverPanic(mid.Authenticate(mux)))
}
