package handlers

import (
	"net/http"

	"github.com/gfmartins/racing-system/services"
)

type TeamSeasonHandler struct {
	teamSeasonService services.TeamSeasonService
}

func NewTeamSeasonHandler(ts services.TeamSeasonService) *TeamSeasonHandler {
	return &TeamSeasonHandler{teamSeasonService: ts}
}

func (h *TeamSeasonHandler) List(w http.ResponseWriter, r *http.Request) {
	links, err := h.teamSeasonService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar equipes por temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, links, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar equipes por temporada")
	}
}

func (h *TeamSeasonHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_equipe_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da relação equipe/temporada deve ser um número")
		return
	}

	link, err := h.teamSeasonService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar relação equipe/temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, link, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar relação equipe/temporada")
	}
}

func (h *TeamSeasonHandler) ListBySeason(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	links, err := h.teamSeasonService.ListBySeason(r.Context(), seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar equipes da temporada")
		return
	}

	if len(links) == 0 {
		emptyParentResponse(w, r, "Nenhuma equipe encontrada para esta temporada",
			"id_temporada", seasonID, "Erro ao buscar equipes da temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, links, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar equipes da temporada")
	}
}

func (h *TeamSeasonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.TeamSeasonInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.teamSeasonService.Create(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao vincular equipe à temporada")
		return
	}

	createdResponse(w, r, "Equipe vinculada à temporada com sucesso", "Erro ao vincular equipe à temporada")
}

func (h *TeamSeasonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_equipe_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da relação equipe/temporada deve ser um número")
		return
	}

	if err := h.teamSeasonService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao remover equipe da temporada")
		return
	}

	messageResponse(w, r, "Relação equipe/temporada removida com sucesso", "Erro ao remover equipe da temporada")
}
