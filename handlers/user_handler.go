package handlers

import (
	"net/http"

	"github.com/gfmartins/racing-system/services"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(us services.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar usuários")
		return
	}

	if err := writeJSON(w, http.StatusOK, users, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar usuários")
	}
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_usuario")
	if err != nil {
		badRequestResponse(w, r, "ID do usuário deve ser um número")
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar usuário")
		return
	}

	if err := writeJSON(w, http.StatusOK, user, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar usuário")
	}
}

func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email_usuario")

	user, err := h.userService.GetByEmail(r.Context(), email)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao buscar usuário por email")
		return
	}

	if err := writeJSON(w, http.StatusOK, user, nil); err != nil {
		serverErrorResponse(w, r, err, "Erro ao buscar usuário por email")
	}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateUserInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.userService.Create(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao inserir usuário")
		return
	}

	createdResponse(w, r, "Usuário inserido com sucesso", "Erro ao inserir usuário")
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_usuario")
	if err != nil {
		badRequestResponse(w, r, "ID do usuário deve ser um número")
		return
	}

	var input services.UpdateUserInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err.Error())
		return
	}

	if _, err := h.userService.Update(r.Context(), id, input); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao atualizar usuário")
		return
	}

	messageResponse(w, r, "Usuário atualizado com sucesso", "Erro ao atualizar usuário")
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_usuario")
	if err != nil {
		badRequestResponse(w, r, "ID do usuário deve ser um número")
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err, "Erro ao excluir usuário")
		return
	}

	messageResponse(w, r, "Usuário excluído com sucesso", "Erro ao excluir usuário")
}
