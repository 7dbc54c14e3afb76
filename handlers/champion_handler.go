package handlers

import (
	"net/http"

	"github.com/gfmartins/racing-system/services"
)

type ChampionHandler struct {
	championService services.ChampionService
}

func NewChampionHandler(cs services.ChampionService) *ChampionHandler {
	return &ChampionHandler{championService: cs}
}

func (h *ChampionHandler) List(w http.ResponseWriter, r *http.Request) {
	champions, err := h.championService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar campeões")
		return
	}

	if err := writeJSON(w, http.StatusOK, champions, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar campeões")
	}
}

func (h *ChampionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_campeao")
	if err != nil {
		badRequestResponse(w, r, "ID do campeão deve ser um número")
		return
	}

	champion, err := h.championService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar campeão")
		return
	}

	if err := writeJSON(w, http.StatusOK, champion, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar campeão")
	}
}

func (h *ChampionHandler) ListBySeason(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	champions, err := h.championService.ListBySeason(r.Context(), seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar campeões da temporada")
		return
	}

	if len(champions) == 0 {
		emptyParentResponse(w, r, "Nenhum campeão encontrado para esta temporada",
			"id_temporada", seasonID, "Erro ao buscar campeões da temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, champions, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar campeões da temporada")
	}
}

func (h *ChampionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.ChampionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.championService.Create(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao inserir campeão")
		return
	}

	createdResponse(w, r, "Campeão inserido com sucesso", "Erro ao inserir campeão")
}

func (h *ChampionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_campeao")
	if err != nil {
		badRequestResponse(w, r, "ID do campeão deve ser um número")
		return
	}

	var input services.ChampionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if input.DriverID == nil && input.TeamID == nil {
		badRequestResponse(w, r, "Pelo menos um ID de piloto ou equipe deve ser fornecido para atualização")
		return
	}

	if _, err := h.championService.Update(r.Context(), id, input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao atualizar campeão")
		return
	}

	messageResponse(w, r, "Campeão atualizado com sucesso", "Erro ao atualizar campeão")
}

func (h *ChampionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_campeao")
	if err != nil {
		badRequestResponse(w, r, "ID do campeão deve ser um número")
		return
	}

	if err := h.championService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao excluir campeão")
		return
	}

	messageResponse(w, r, "Campeão excluído com sucesso", "Erro ao excluir campeão")
}
