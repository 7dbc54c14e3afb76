package handlers

import (
	"net/http"

	"github.com/gfmartins/racing-system/services"
)

type DriverHandler struct {
	driverService services.DriverService
}

func NewDriverHandler(ds services.DriverService) *DriverHandler {
	return &DriverHandler{driverService: ds}
}

func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.driverService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar pilotos")
		return
	}

	if err := writeJSON(w, http.StatusOK, drivers, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar pilotos")
	}
}

func (h *DriverHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_piloto")
	if err != nil {
		badRequestResponse(w, r, "ID do piloto deve ser um número")
		return
	}

	driver, err := h.driverService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar piloto")
		return
	}

	if err := writeJSON(w, http.StatusOK, driver, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar piloto")
	}
}

func (h *DriverHandler) ListBySeason(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathID(r, "id_temporada")
	if err != nil {
		badRequestResponse(w, r, "ID da temporada deve ser um número")
		return
	}

	drivers, err := h.driverService.ListBySeason(r.Context(), seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar pilotos da temporada")
		return
	}

	if len(drivers) == 0 {
		emptyParentResponse(w, r, "Nenhum piloto encontrado para esta temporada",
			"id_temporada", seasonID, "Erro ao buscar pilotos da temporada")
		return
	}

	if err := writeJSON(w, http.StatusOK, drivers, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar pilotos da temporada")
	}
}

func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.DriverInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.driverService.Create(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao inserir piloto")
		return
	}

	createdResponse(w, r, "Piloto inserido com sucesso", "Erro ao inserir piloto")
}

func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_piloto")
	if err != nil {
		badRequestResponse(w, r, "ID do piloto deve ser um número")
		return
	}

	var input services.DriverInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.driverService.Update(r.Context(), id, input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao atualizar piloto")
		return
	}

	messageResponse(w, r, "Piloto atualizado com sucesso", "Erro ao atualizar piloto")
}

func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_piloto")
	if err != nil {
		badRequestResponse(w, r, "ID do piloto deve ser um número")
		return
	}

	if err := h.driverService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao excluir piloto")
		return
	}

	messageResponse(w, r, "Piloto excluído com sucesso", "Erro ao excluir piloto")
}

func (h *DriverHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_piloto")
	if err != nil {
		badRequestResponse(w, r, "ID do piloto deve ser um número")
		return
	}

	file, header, err := imageFromForm(w, r)
	if err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}
	defer file.Close()

	url, err := h.driverService.UploadPhoto(r.Context(), id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao enviar foto do piloto")
		return
	}

	env := jsonResponse{"mensagem": "Imagem enviada com sucesso", "url": url}
	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao enviar foto do piloto")
	}
}
