package handlers

import (
	"net/http"

	"github.com/gfmartins/racing-system/services"
)

type RaceHandler struct {
	raceService services.RaceService
}

func NewRaceHandler(rs services.RaceService) *RaceHandler {
	return &RaceHandler{raceService: rs}
}

func (h *RaceHandler) List(w http.ResponseWriter, r *http.Request) {
	races, err := h.raceService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar corridas")
		return
	}

	if err := writeJSON(w, http.StatusOK, races, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar corridas")
	}
}

func (h *RaceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_corrida")
	if err != nil {
		badRequestResponse(w, r, "ID da corrida deve ser um número")
		return
	}

	race, err := h.raceService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar corrida")
		return
	}

	if err := writeJSON(w, http.StatusOK, race, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar corrida")
	}
}

func (h *RaceHandler) ListBySeason(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	races, err := h.raceService.ListBySeason(r.Context(), seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar corridas da temporada")
		return
	}

	if len(races) == 0 {
		emptyParentResponse(w, r, "Nenhuma corrida encontrada para esta temporada",
			"id_temporada", seasonID, "Erro ao buscar corridas da temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, races, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar corridas da temporada")
	}
}

func (h *RaceHandler) Results(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_corrida")
	if err != nil {
		badRequestResponse(w, r, "ID da corrida deve ser um número")
		return
	}

	results, err := h.raceService.Results(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar resultados da corrida")
		return
	}

	if len(results) == 0 {
		emptyParentResponse(w, r, "Nenhum resultado encontrado para esta corrida",
			"id_corrida", id, "Erro ao buscar resultados da corrida")
		return
	}

	if err := writeJSON(w, http.StatusOK, results, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar resultados da corrida")
	}
}

func (h *RaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.RaceInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.raceService.Create(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao inserir corrida")
		return
	}

	createdResponse(w, r, "Corrida inserida com sucesso", "Erro ao inserir corrida")
}

func (h *RaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_corrida")
	if err != nil {
		badRequestResponse(w, r, "ID da corrida deve ser um número")
		return
	}

	var input services.RaceInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.raceService.Update(r.Context(), id, input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao atualizar corrida")
		return
	}

	messageResponse(w, r, "Corrida atualizada com sucesso", "Erro ao atualizar corrida")
}

func (h *RaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_corrida")
	if err != nil {
		badRequestResponse(w, r, "ID da corrida deve ser um número")
		return
	}

	if err := h.raceService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao excluir corrida")
		return
	}

	messageResponse(w, r, "Corrida excluída com sucesso", "Erro ao excluir corrida")
}
