package routes

import (
	"net/http"

	"github.com/gfmartins/racing-system/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes monta a superfície HTTP da API: CRUD por entidade sob /api,
// read models da temporada e o feed websocket por corrida.
func SetupRoutes(
	router *chi.Mux,
	userHandler *handlers.UserHandler,
	seasonHandler *handlers.SeasonHandler,
	teamHandler *handlers.TeamHandler,
	driverHandler *handlers.DriverHandler,
	teamSeasonHandler *handlers.TeamSeasonHandler,
	driverTeamSeasonHandler *handlers.DriverTeamSeasonHandler,
	raceHandler *handlers.RaceHandler,
	resultHandler *handlers.ResultHandler,
	championHandler *handlers.ChampionHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("API de campeonato de corrida em execução"))
	})

	router.Route("/api", func(api chi.Router) {
		api.Route("/usuarios", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Get("/{id_usuario}", userHandler.GetByID)
			r.Get("/email/{email_usuario}", userHandler.GetByEmail)
			r.Post("/", userHandler.Create)
			r.Put("/{id_usuario}", userHandler.Update)
			r.Delete("/{id_usuario}", userHandler.Delete)
		})

		api.Route("/temporadas", func(r chi.Router) {
			r.Get("/", seasonHandler.List)
			r.Get("/{id_temporada}", seasonHandler.GetByID)
			r.Get("/ano/{ano_temporada}", seasonHandler.GetByYear)
			r.Get("/{id_temporada}/corridas", seasonHandler.ListRaces)
			r.Get("/{id_temporada}/resumo", seasonHandler.Summary)
			r.Get("/{id_temporada}/resultados", seasonHandler.Results)
			r.Get("/{id_temporada}/classificacao", seasonHandler.Standings)
			r.Post("/", seasonHandler.Create)
			r.Post("/{id_temporada}/foto", seasonHandler.UploadPhoto)
			r.Put("/{id_temporada}", seasonHandler.Update)
			r.Delete("/{id_temporada}", seasonHandler.Delete)
		})

		api.Route("/equipes", func(r chi.Router) {
			r.Get("/", teamHandler.List)
			r.Get("/{id_equipe}", teamHandler.GetByID)
			r.Get("/temporada/{id_temporada}", teamHandler.ListBySeason)
			r.Post("/", teamHandler.Create)
			r.Post("/{id_equipe}/logo", teamHandler.UploadLogo)
			r.Put("/{id_equipe}", teamHandler.Update)
			r.Delete("/{id_equipe}", teamHandler.Delete)
		})

		api.Route("/pilotos", func(r chi.Router) {
			r.Get("/", driverHandler.List)
			r.Get("/{id_piloto}", driverHandler.GetByID)
			r.Get("/temporada/{id_temporada}", driverHandler.ListBySeason)
			r.Post("/", driverHandler.Create)
			r.Post("/{id_piloto}/foto", driverHandler.UploadPhoto)
			r.Put("/{id_piloto}", driverHandler.Update)
			r.Delete("/{id_piloto}", driverHandler.Delete)
		})

		api.Route("/equipes-temporadas", func(r chi.Router) {
			r.Get("/", teamSeasonHandler.List)
			r.Get("/{id_equipe_temporada}", teamSeasonHandler.GetByID)
			r.Get("/temporada/{id_temporada}", teamSeasonHandler.ListBySeason)
			r.Post("/", teamSeasonHandler.Create)
			r.Delete("/{id_equipe_temporada}", teamSeasonHandler.Delete)
		})

		api.Route("/pilotos-equipes-temporadas", func(r chi.Router) {
			r.Get("/", driverTeamSeasonHandler.List)
			r.Get("/{id_piloto_equipe_temporada}", driverTeamSeasonHandler.GetByID)
			r.Get("/equipe-temporada/{id_equipe_temporada}", driverTeamSeasonHandler.ListByTeamSeason)
			r.Post("/", driverTeamSeasonHandler.Create)
			r.Put("/{id_piloto_equipe_temporada}", driverTeamSeasonHandler.UpdateCarNumber)
			r.Delete("/{id_piloto_equipe_temporada}", driverTeamSeasonHandler.Delete)
		})

		api.Route("/corridas", func(r chi.Router) {
			r.Get("/", raceHandler.List)
			r.Get("/{id_corrida}", raceHandler.GetByID)
			r.Get("/temporada/{id_temporada}", raceHandler.ListBySeason)
			r.Get("/{id_corrida}/resultados", raceHandler.Results)
			r.Post("/", raceHandler.Create)
			r.Put("/{id_corrida}", raceHandler.Update)
			r.Delete("/{id_corrida}", raceHandler.Delete)
		})

		api.Route("/resultados", func(r chi.Router) {
			r.Get("/", resultHandler.List)
			r.Get("/{id_resultado}", resultHandler.GetByID)
			r.Get("/corrida/{id_corrida}", resultHandler.ListByRace)
			r.Post("/", resultHandler.Create)
			r.Put("/{id_resultado}", resultHandler.Update)
			r.Delete("/{id_resultado}", resultHandler.Delete)
		})

		api.Route("/campeoes", func(r chi.Router) {
			r.Get("/", championHandler.List)
			r.Get("/{id_campeao}", championHandler.GetByID)
			r.Get("/temporada/{id_temporada}", championHandler.ListBySeason)
			r.Post("/", championHandler.Create)
			r.Put("/{id_campeao}", championHandler.Update)
			r.Delete("/{id_campeao}", championHandler.Delete)
		})
	})

	router.Get("/ws/corridas/{id_corrida}", webSocketHandler.ServeRaceRoom)
}
