package handlers

import (
	"net/http"

	"github.com/gfmartins/racing-system/services"
)

type SeasonHandler struct {
	seasonService services.SeasonService
}

func NewSeasonHandler(ss services.SeasonService) *SeasonHandler {
	return &SeasonHandler{seasonService: ss}
}

func (h *SeasonHandler) List(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.seasonService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar temporadas")
		return
	}

	if err := writeJSON(w, http.StatusOK, seasons, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar temporadas")
	}
}

func (h *SeasonHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	season, err := h.seasonService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, season, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar temporada")
	}
}

func (h *SeasonHandler) GetByYear(w http.ResponseWriter, r *http.Request) {
	year, err := pathID(r, "ano_temporada")
	if err != nil {
		badRequestResponse(w, r, "Ano da temporada deve ser um número")
		return
	}

	season, err := h.seasonService.GetByYear(r.Context(), year)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar temporada por ano")
		return
	}

	if err := writeJSON(w, http.StatusOK, season, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar temporada por ano")
	}
}

func (h *SeasonHandler) ListRaces(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	races, err := h.seasonService.ListRaces(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar corridas da temporada")
		return
	}

	if len(races) == 0 {
		emptyParentResponse(w, r, "Nenhuma corrida encontrada para esta temporada",
			"id_temporada", id, "Erro ao buscar corridas da temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, races, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar corridas da temporada")
	}
}

func (h *SeasonHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	summary, err := h.seasonService.Summary(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar resumo da temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, summary, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar resumo da temporada")
	}
}

func (h *SeasonHandler) Results(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	results, err := h.seasonService.Results(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar resultados da temporada")
		return
	}

	if len(results) == 0 {
		emptyParentResponse(w, r, "Nenhum resultado encontrado para esta temporada",
			"id_temporada", id, "Erro ao buscar resultados da temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, results, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar resultados da temporada")
	}
}

func (h *SeasonHandler) Standings(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	standings, err := h.seasonService.Standings(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar classificação da temporada")
		return
	}

	if len(standings.Drivers) == 0 && len(standings.Constructors) == 0 {
		emptyParentResponse(w, r, "Nenhum resultado encontrado para esta temporada",
			"id_temporada", id, "Erro ao buscar classificação da temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, standings, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar classificação da temporada")
	}
}

func (h *SeasonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.SeasonInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.seasonService.Create(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao inserir temporada")
		return
	}

	createdResponse(w, r, "Temporada inserida com sucesso", "Erro ao inserir temporada")
}

func (h *SeasonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	var input services.SeasonInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.seasonService.Update(r.Context(), id, input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao atualizar temporada")
		return
	}

	messageResponse(w, r, "Temporada atualizada com sucesso", "Erro ao atualizar temporada")
}

func (h *SeasonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	if err := h.seasonService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao excluir temporada")
		return
	}

	messageResponse(w, r, "Temporada excluída com sucesso", "Erro ao excluir temporada")
}

func (h *SeasonHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	file, header, err := imageFromForm(w, r)
	if err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}
	defer file.Close()

	url, err := h.seasonService.UploadPhoto(r.Context(), id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao enviar imagem da temporada")
		return
	}

	env := jsonResponse{"mensagem": "Imagem enviada com sucesso", "url": url}
	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao enviar imagem da temporada")
	}
}
