package router

import (
	"net/http"
	"time"

	_ "vetdesk/docs"

	mem "vetdesk/internal/adapters/storage/memory"
	pg "vetdesk/internal/adapters/storage/postgres"
	"vetdesk/internal/domain/lookup"
	"vetdesk/internal/domain/organizations"
	"vetdesk/internal/domain/owners"
	"vetdesk/internal/domain/pets"
	"vetdesk/internal/domain/registration"
	"vetdesk/internal/domain/session"
	"vetdesk/internal/middleware"
	"vetdesk/internal/platform/logger"
	"vetdesk/internal/wizard"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, las colecciones se leen de Postgres. Si no, datasets en memoria.
	DB *sqlx.DB

	Logger     logger.Logger
	LoginDelay time.Duration

	// Opcionales (tests): ids de confirmación deterministas.
	PetMinter   *wizard.Minter
	OwnerMinter *wizard.Minter
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		orgRepo   organizations.Repository
		ownerRepo owners.Repository
		petRepo   pets.Repository
	)

	if opts.DB != nil {
		orgRepo = pg.NewOrganizationsRepo(opts.DB)
		ownerRepo = pg.NewOwnersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
	} else {
		orgRepo = mem.NewOrganizationsRepo(mem.SeedOrganizations())
		ownerRepo = mem.NewOwnersRepo(mem.SeedOwners())
		petRepo = mem.NewPetRepo(mem.SeedPets())
	}

	// Services por módulo
	orgsSvc := organizations.NewService(orgRepo)
	ownersSvc := owners.NewService(ownerRepo)
	petsSvc := pets.NewService(petRepo)

	resolver := lookup.NewResolver(ownersSvc, orgsSvc)

	// Rutas por módulo
	organizations.RegisterRoutes(r, orgsSvc)
	owners.RegisterRoutes(r, ownersSvc)
	pets.RegisterRoutes(r, petsSvc)

	// Wizards de alta; también registran /pets/{id} y /owners/{id}
	registration.RegisterRoutes(r, registration.Deps{
		Pets:        petsSvc,
		Owners:      ownersSvc,
		Resolver:    resolver,
		Log:         log,
		PetMinter:   opts.PetMinter,
		OwnerMinter: opts.OwnerMinter,
	})

	session.RegisterRoutes(r, opts.LoginDelay, log)

	return r
}
