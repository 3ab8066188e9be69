package ports

import "context"

// TextGenerator define el puerto de salida hacia el generador de texto.
// Cualquier adaptador (Gemini, OpenAI, mock) debe implementar esta interfaz:
// la aplicación solo conoce este contrato de un prompt de entrada y un texto
// de salida, sin rasgos específicos del proveedor.
type TextGenerator interface {
	// GenerateProposal redacta la propuesta comercial en Markdown a partir del
	// rubro del cliente, el problema descrito y el enfoque de venta elegido.
	// El contexto debe llevar un timeout: la llamada externa no se bloquea
	// indefinidamente.
	GenerateProposal(ctx context.Context, rubro, problem, angle string) (string, error)
}
