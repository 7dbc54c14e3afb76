package handlers

import (
	"net/http"

	"github.com/gfmartins/racing-system/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar equipes")
		return
	}

	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar equipes")
	}
}

func (h *TeamHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_equipe")
	if err != nil {
		badRequestResponse(w, r, "ID da equipe deve ser um número")
		return
	}

	team, err := h.teamService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar equipe")
		return
	}

	if err := writeJSON(w, http.StatusOK, team, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar equipe")
	}
}

func (h *TeamHandler) ListBySeason(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	teams, err := h.teamService.ListBySeason(r.Context(), seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar equipes da temporada")
		return
	}

	if len(teams) == 0 {
		emptyParentResponse(w, r, "Nenhuma equipe encontrada para esta temporada",
			"id_temporada", seasonID, "Erro ao buscar equipes da temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar equipes da temporada")
	}
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.TeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.teamService.Create(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao inserir equipe")
		return
	}

	createdResponse(w, r, "Equipe inserida com sucesso", "Erro ao inserir equipe")
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_equipe")
	if err != nil {
		badRequestResponse(w, r, "ID da equipe deve ser um número")
		return
	}

	var input services.TeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.teamService.Update(r.Context(), id, input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao atualizar equipe")
		return
	}

	messageResponse(w, r, "Equipe atualizada com sucesso", "Erro ao atualizar equipe")
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_equipe")
	if err != nil {
		badRequestResponse(w, r, "ID da equipe deve ser um número")
		return
	}

	if err := h.teamService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao excluir equipe")
		return
	}

	messageResponse(w, r, "Equipe excluída com sucesso", "Erro ao excluir equipe")
}

func (h *TeamHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_equipe")
	if err != nil {
		badRequestResponse(w, r, "ID da equipe deve ser um número")
		return
	}

	file, header, err := imageFromForm(w, r)
	if err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}
	defer file.Close()

	url, err := h.teamService.UploadLogo(r.Context(), id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao enviar logo da equipe")
		return
	}

	env := jsonResponse{"mensagem": "Imagem enviada com sucesso", "url": url}
	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao enviar logo da equipe")
	}
}
