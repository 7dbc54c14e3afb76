package handlers

import (
	"net/http"

	"github.com/gfmartins/racing-system/services"
)

type DriverTeamSeasonHandler struct {
	driverTeamSeasonService services.DriverTeamSeasonService
}

func NewDriverTeamSeasonHandler(ds services.DriverTeamSeasonService) *DriverTeamSeasonHandler {
	return &DriverTeamSeasonHandler{driverTeamSeasonService: ds}
}

func (h *DriverTeamSeasonHandler) List(w http.ResponseWriter, r *http.Request) {
	links, err := h.driverTeamSeasonService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar pilotos por equipe/temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, links, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar pilotos por equipe/temporada")
	}
}

func (h *DriverTeamSeasonHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_piloto_equipe_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da relação piloto/equipe/temporada deve ser um número")
		return
	}

	link, err := h.driverTeamSeasonService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar relação piloto/equipe/temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, link, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar relação piloto/equipe/temporada")
	}
}

func (h *DriverTeamSeasonHandler) ListByTeamSeason(w http.ResponseWriter, r *http.Request) {
	teamSeasonID, err := pathID(r, "id_equipe_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da equipe/temporada deve ser um número")
		return
	}

	links, err := h.driverTeamSeasonService.ListByTeamSeason(r.Context(), teamSeasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar pilotos da equipe/temporada")
		return
	}

	if len(links) == 0 {
		emptyParentResponse(w, r, "Nenhum piloto encontrado para esta equipe/temporada",
			"id_equipe_temporada", teamSeasonID, "Erro ao buscar pilotos da equipe/temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, links, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar pilotos da equipe/temporada")
	}
}

func (h *DriverTeamSeasonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.DriverTeamSeasonInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.driverTeamSeasonService.Create(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao vincular piloto à equipe/temporada")
		return
	}

	createdResponse(w, r, "Piloto vinculado à equipe/temporada com sucesso", "Erro ao vincular piloto à equipe/temporada")
}

func (h *DriverTeamSeasonHandler) UpdateCarNumber(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_piloto_equipe_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da relação piloto/equipe/temporada deve ser um número")
		return
	}

	var input services.CarNumberInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if input.CarNumber == nil {
		badRequestResponse(w, r, "O campo número do carro deve ser fornecido para atualização")
		return
	}

	if err := h.driverTeamSeasonService.UpdateCarNumber(r.Context(), id, input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao atualizar relação piloto/equipe/temporada")
		return
	}

	messageResponse(w, r, "Relação piloto/equipe/temporada atualizada com sucesso", "Erro ao atualizar relação piloto/equipe/temporada")
}

func (h *DriverTeamSeasonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_piloto_equipe_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da relação piloto/equipe/temporada deve ser um número")
		return
	}

	if err := h.driverTeamSeasonService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao remover piloto da equipe/temporada")
		return
	}

	messageResponse(w, r, "Relação piloto/equipe/temporada removida com sucesso", "Erro ao remover piloto da equipe/temporada")
}
