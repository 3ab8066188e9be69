// seed crea el esquema de la agencia si no existe y da de alta los usuarios
// iniciales. Los usuarios se aprovisionan siempre fuera de banda: la API nunca
// escribe en agencia_usuarios.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_HOST, etc.).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/devstudio/agencia-api/internal/domain/entity"
	"github.com/devstudio/agencia-api/internal/infrastructure/postgres"
	"github.com/devstudio/agencia-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS agencia_usuarios (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	nombre_completo TEXT NOT NULL,
	rol TEXT NOT NULL DEFAULT 'VENDEDOR',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS agencia_clientes (
	id UUID PRIMARY KEY,
	usuario_id UUID NOT NULL REFERENCES agencia_usuarios(id),
	nombre TEXT NOT NULL,
	empresa TEXT NOT NULL,
	rubro TEXT NOT NULL DEFAULT '',
	telefono TEXT NOT NULL DEFAULT '',
	direccion TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	notas_personales TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS agencia_citas (
	id UUID PRIMARY KEY,
	usuario_id UUID NOT NULL REFERENCES agencia_usuarios(id),
	cliente_id UUID NOT NULL,
	fecha_hora TIMESTAMPTZ NOT NULL,
	motivo TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS agencia_proyectos (
	id UUID PRIMARY KEY,
	usuario_id UUID NOT NULL REFERENCES agencia_usuarios(id),
	cliente_id UUID NOT NULL,
	problema_cliente TEXT NOT NULL DEFAULT '',
	solucion_ia TEXT NOT NULL DEFAULT '',
	fecha_limite_entrega TIMESTAMPTZ NOT NULL,
	estado_proyecto TEXT NOT NULL DEFAULT 'EN_PREPARACION',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// seedUsers usuarios de arranque: un DIRECTOR y un VENDEDOR de ejemplo.
// Las contraseñas se guardan con hash bcrypt; la API también acepta filas
// heredadas con contraseña en claro.
var seedUsers = []struct {
	Username string
	Password string
	FullName string
	Role     string
}{
	{"directora", "cambiar-ahora", "Dirección General", entity.RoleDirector},
	{"ana", "cambiar-ahora", "Ana Vendedora", entity.RoleVendedor},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "crear esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("esquema verificado")

	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
			os.Exit(1)
		}
		tag, err := pool.Exec(ctx, `
			INSERT INTO agencia_usuarios (id, username, password, nombre_completo, rol)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (username) DO NOTHING`,
			uuid.New().String(), u.Username, string(hash), u.FullName, u.Role,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar usuario %s: %v\n", u.Username, err)
			os.Exit(1)
		}
		if tag.RowsAffected() > 0 {
			fmt.Printf("usuario %s (%s) creado\n", u.Username, u.Role)
		} else {
			fmt.Printf("usuario %s ya existía, sin cambios\n", u.Username)
		}
	}
}
