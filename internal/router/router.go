package router

import (
	"database/sql"
	"net/http"

	mem "vet-clinic-records/internal/adapters/storage/memory"
	pg "vet-clinic-records/internal/adapters/storage/postgres"
	"vet-clinic-records/internal/domain/clients"
	"vet-clinic-records/internal/domain/history"
	"vet-clinic-records/internal/domain/pets"
	"vet-clinic-records/internal/domain/vets"
	"vet-clinic-records/internal/domain/visits"
	"vet-clinic-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, repos in-memory (modo dev).
	DB *sql.DB

	// Opcional: nil = logger default.
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		clientsRepo clients.Repository
		petsRepo    pets.Repository
		vetsRepo    vets.Repository
		visitsRepo  visits.Repository
		historyRepo history.Repository
	)

	if opts.DB != nil {
		clientsRepo = pg.NewClientsRepo(opts.DB)
		petsRepo = pg.NewPetsRepo(opts.DB)
		vetsRepo = pg.NewVetsRepo(opts.DB)
		visitsRepo = pg.NewVisitsRepo(opts.DB)
		historyRepo = pg.NewHistoryRepo(opts.DB)
		log.Info("storage: postgres", nil)
	} else {
		// Modo dev: el roster de veterinarios es data de referencia sin
		// flujo de alta, así que se siembra acá.
		cr := mem.NewClientsRepo()
		pr := mem.NewPetsRepo()
		vr := mem.NewVetsRepo(
			vets.Veterinarian{ID: 1, FirstName: "Luz", LastName: "Abad"},
			vets.Veterinarian{ID: 2, FirstName: "Ramon", MiddleName: "S", LastName: "Dizon"},
			vets.Veterinarian{ID: 3, FirstName: "Pia", LastName: "Reyes"},
		)
		visr := mem.NewVisitsRepo()

		clientsRepo = cr
		petsRepo = pr
		vetsRepo = vr
		visitsRepo = visr
		historyRepo = mem.NewHistoryRepo(cr, pr, vr, visr)
		log.Info("storage: in-memory (dev)", nil)
	}

	// Services por módulo
	clientsSvc := clients.NewService(clientsRepo)
	petsSvc := pets.NewService(petsRepo, clientsSvc)
	vetsSvc := vets.NewService(vetsRepo)
	visitsSvc := visits.NewService(visitsRepo, petsSvc, vetsSvc)
	historySvc := history.NewService(historyRepo, vetsSvc)

	// Rutas por módulo
	clients.RegisterRoutes(r, clientsSvc)
	pets.RegisterRoutes(r, petsSvc)
	vets.RegisterRoutes(r, vetsSvc)
	visits.RegisterRoutes(r, visitsSvc)
	history.RegisterRoutes(r, historySvc)

	return r
}
