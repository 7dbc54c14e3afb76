package handlers

import (
	"net/http"

	"github.com/gfmartins/racing-system/services"
)

type ResultHandler struct {
	resultService services.ResultService
	raceService   services.RaceService
}

func NewResultHandler(rs services.ResultService, races services.RaceService) *ResultHandler {
	return &ResultHandler{resultService: rs, raceService: races}
}

func (h *ResultHandler) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.resultService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar resultados")
		return
	}

	if err := writeJSON(w, http.StatusOK, results, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar resultados")
	}
}

func (h *ResultHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_resultado")
	if err != nil {
		badRequestResponse(w, r, "ID do resultado deve ser um número")
		return
	}

	result, err := h.resultService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar resultado")
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar resultado")
	}
}

func (h *ResultHandler) ListByRace(w http.ResponseWriter, r *http.Request) {
	raceID, err := pathID(r, "id_corrida")
	if err != nil {
		badRequestResponse(w, r, "ID da corrida deve ser um número")
		return
	}

	results, err := h.raceService.Results(r.Context(), raceID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar resultados da corrida")
		return
	}

	if len(results) == 0 {
		emptyParentResponse(w, r, "Nenhum resultado encontrado para esta corrida",
			"id_corrida", raceID, "Erro ao buscar resultados da corrida")
		return
	}

	if err := writeJSON(w, http.StatusOK, results, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar resultados da corrida")
	}
}

func (h *ResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.ResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.resultService.Create(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao inserir resultado")
		return
	}

	createdResponse(w, r, "Resultado inserido com sucesso", "Erro ao inserir resultado")
}

func (h *ResultHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_resultado")
	if err != nil {
		badRequestResponse(w, r, "ID do resultado deve ser um número")
		return
	}

	var input services.ResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.resultService.Update(r.Context(), id, input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao atualizar resultado")
		return
	}

	messageResponse(w, r, "Resultado atualizado com sucesso", "Erro ao atualizar resultado")
}

func (h *ResultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_resultado")
	if err != nil {
		badRequestResponse(w, r, "ID do resultado deve ser um número")
		return
	}

	if err := h.resultService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao excluir resultado")
		return
	}

	messageResponse(w, r, "Resultado excluído com sucesso", "Erro ao excluir resultado")
}
