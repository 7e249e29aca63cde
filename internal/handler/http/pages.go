package http

import (
	"net/http"

	"github.com/MKhiriev/infomilo/internal/app"
	"github.com/MKhiriev/infomilo/internal/logger"
	"github.com/MKhiriev/infomilo/internal/utils"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page, err := h.services.PageService.RenderHome(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.home").Msg("error rendering home page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteHTML(w, page, http.StatusOK)
}

func (h *Handler) config(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	doc, err := h.services.ProfileService.Document(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.config").Msg("error encoding profile document")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteBody(w, utils.ContentTypeJSON, doc, http.StatusOK)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	report := h.services.StatusService.Report(r.Context())

	if _, err := utils.WriteJSON(w, report, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.status").Msg("error writing status report")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteHTML(w, []byte(app.MsgNotFoundPage), http.StatusNotFound)
}
