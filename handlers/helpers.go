package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gfmartins/racing-system/services"
	"github.com/go-chi/chi/v5"
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("corpo contém JSON malformado (caractere %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("corpo contém JSON malformado")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("corpo contém tipo inválido para o campo %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("corpo contém tipo inválido (caractere %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("corpo da requisição não pode ser vazio")
		case err.Error() == "http: request body too large":
			return fmt.Errorf("corpo da requisição não pode exceder %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("corpo deve conter um único valor JSON")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	env := jsonResponse{"erro": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.Error("failed to write error response",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusBadRequest, message)
}

func notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusNotFound, message)
}

// serverErrorResponse loga o erro real e entrega ao cliente só a mensagem
// genérica da operação.
func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error, message string) {
	slog.Error("internal server error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func createdResponse(w http.ResponseWriter, r *http.Request, message string, fallback string) {
	env := jsonResponse{"mensagem": message, "rowsAffected": 1}
	if err := writeJSON(w, http.StatusCreated, env, nil); err != nil {
		serverErrorResponse(w, r, err, fallback)
	}
}

func messageResponse(w http.ResponseWriter, r *http.Request, message string, fallback string) {
	env := jsonResponse{"mensagem": message}
	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		serverErrorResponse(w, r, err, fallback)
	}
}

// emptyParentResponse é o 404 das coleções vazias por pai, ecoando o id
// consultado.
func emptyParentResponse(w http.ResponseWriter, r *http.Request, message, parentKey string, parentID int, fallback string) {
	env := jsonResponse{"mensagem": message, parentKey: parentID}
	if err := writeJSON(w, http.StatusNotFound, env, nil); err != nil {
		serverErrorResponse(w, r, err, fallback)
	}
}

func pathID(r *http.Request, param string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, param))
}

// imageFromForm extrai o arquivo do campo "imagem" do formulário multipart.
// O chamador fecha o arquivo.
func imageFromForm(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, nil, errors.New("Formulário multipart inválido")
	}

	file, header, err := r.FormFile("imagem")
	if err != nil {
		return nil, nil, errors.New("Arquivo de imagem é obrigatório no campo 'imagem'")
	}

	if header.Header.Get("Content-Type") == "" {
		file.Close()
		return nil, nil, errors.New("Content-Type da imagem é obrigatório")
	}
	return file, header, nil
}

// mapServiceErrorToHTTP projeta os erros do serviço no contrato HTTP:
// validação e conflitos viram 400, ausência vira 404, o resto vira o 500
// genérico da operação.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	// Campos obrigatórios
	case errors.Is(err, services.ErrUserFieldsRequired):
		badRequestResponse(w, r, "Nome, email e senha são obrigatórios")
	case errors.Is(err, services.ErrUserNameEmailRequired):
		badRequestResponse(w, r, "Nome e email são obrigatórios")
	case errors.Is(err, services.ErrSeasonYearRequired):
		badRequestResponse(w, r, "Ano da temporada é obrigatório")
	case errors.Is(err, services.ErrTeamNameRequired):
		badRequestResponse(w, r, "Nome da equipe é obrigatório")
	case errors.Is(err, services.ErrDriverNameRequired):
		badRequestResponse(w, r, "Nome do piloto é obrigatório")
	case errors.Is(err, services.ErrTeamSeasonRefsRequired):
		badRequestResponse(w, r, "ID da equipe e ID da temporada são obrigatórios")
	case errors.Is(err, services.ErrDriverTeamSeasonRefsRequired):
		badRequestResponse(w, r, "ID do piloto, ID da equipe/temporada e número do carro são obrigatórios")
	case errors.Is(err, services.ErrRaceFieldsRequired):
		badRequestResponse(w, r, "ID da temporada e nome da corrida são obrigatórios")
	case errors.Is(err, services.ErrResultFieldsRequired):
		badRequestResponse(w, r, "ID da corrida, ID do piloto/equipe/temporada, posições e status são obrigatórios")
	case errors.Is(err, services.ErrChampionRefsRequired):
		badRequestResponse(w, r, "ID da temporada e pelo menos um ID de piloto ou equipe são obrigatórios")
	case errors.Is(err, services.ErrChampionUpdateRefRequired):
		badRequestResponse(w, r, "Pelo menos um ID de piloto ou equipe deve ser fornecido para atualização")
	case errors.Is(err, services.ErrChampionRefsExclusive):
		badRequestResponse(w, r, "Apenas um ID de piloto ou equipe pode ser informado")

	// Conflitos de unicidade
	case errors.Is(err, services.ErrUserEmailConflict):
		badRequestResponse(w, r, "Email já cadastrado")
	case errors.Is(err, services.ErrSeasonYearConflict):
		badRequestResponse(w, r, "Ano de temporada já cadastrado")
	case errors.Is(err, services.ErrTeamSeasonConflict):
		badRequestResponse(w, r, "Equipe já cadastrada nesta temporada")
	case errors.Is(err, services.ErrDriverTeamSeasonConflict):
		badRequestResponse(w, r, "Piloto já vinculado a esta equipe na temporada")
	case errors.Is(err, services.ErrCarNumberConflict):
		badRequestResponse(w, r, "Número de carro já utilizado nesta equipe e temporada")
	case errors.Is(err, services.ErrResultConflict):
		badRequestResponse(w, r, "Resultado já registrado para este piloto nesta corrida")
	case errors.Is(err, services.ErrChampionConflict):
		badRequestResponse(w, r, "Campeão já registrado para esta temporada")

	// Não encontrado
	case errors.Is(err, services.ErrUserNotFound):
		notFoundResponse(w, r, "Usuário não encontrado")
	case errors.Is(err, services.ErrSeasonNotFound):
		notFoundResponse(w, r, "Temporada não encontrada")
	case errors.Is(err, services.ErrTeamNotFound):
		notFoundResponse(w, r, "Equipe não encontrada")
	case errors.Is(err, services.ErrDriverNotFound):
		notFoundResponse(w, r, "Piloto não encontrado")
	case errors.Is(err, services.ErrTeamSeasonNotFound):
		notFoundResponse(w, r, "Relação equipe/temporada não encontrada")
	case errors.Is(err, services.ErrDriverTeamSeasonNotFound):
		notFoundResponse(w, r, "Relação piloto/equipe/temporada não encontrada")
	case errors.Is(err, services.ErrRaceNotFound):
		notFoundResponse(w, r, "Corrida não encontrada")
	case errors.Is(err, services.ErrResultNotFound):
		notFoundResponse(w, r, "Resultado não encontrado")
	case errors.Is(err, services.ErrChampionNotFound):
		notFoundResponse(w, r, "Campeão não encontrado")

	// Infraestrutura
	case errors.Is(err, services.ErrUploadsDisabled):
		errorResponse(w, r, http.StatusServiceUnavailable, "Upload de imagens não configurado")

	default:
		serverErrorResponse(w, r, err, fallback)
	}
}
