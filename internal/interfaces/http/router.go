package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devstudio/agencia-api/internal/application/auth"
	"github.com/devstudio/agencia-api/internal/application/pipeline"
	"github.com/devstudio/agencia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ClientUC      *usecase.ClientUseCase
	AppointmentUC *usecase.AppointmentUseCase
	ProposalUC    *usecase.ProposalUseCase
	PipelineUC    *pipeline.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas: cada petición restaura la sesión desde el token
	protected := api.Group("/", SessionMiddleware(deps.AuthUC))

	protected.Get("/auth/me", authHandler.Me)

	// Directorio de clientes
	clients := protected.Group("/clientes")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Get("/rubros", clientHandler.Rubros)
	clients.Post("/", clientHandler.Create)
	clients.Delete("/:id", clientHandler.Delete)

	// Agenda
	appointments := protected.Group("/citas")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Get("/", appointmentHandler.List)
	appointments.Post("/", appointmentHandler.Create)

	// Pipeline de propuestas: el borrador IA antes que las rutas con :id
	proposals := protected.Group("/propuestas")
	pipelineHandler := NewPipelineHandler(deps.PipelineUC)
	proposals.Post("/draft", pipelineHandler.Draft)
	proposals.Get("/draft", pipelineHandler.GetDraft)
	proposals.Delete("/draft", pipelineHandler.DiscardDraft)
	proposals.Post("/", pipelineHandler.Commit)

	proposalHandler := NewProposalHandler(deps.ProposalUC)
	proposals.Get("/estados", proposalHandler.Estados)
	proposals.Get("/", proposalHandler.List)
	proposals.Patch("/:id/estado", proposalHandler.UpdateEstado)
	proposals.Put("/:id", proposalHandler.UpdateContent)
}
