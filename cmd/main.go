package main

import (
	"context"
	"fmt"
	"os"

	"apexrenting/internal/infrastructure"
	"apexrenting/internal/interfaces/http"
	"apexrenting/internal/repository"
	"apexrenting/internal/usecases"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env file if present; real deployments use the environment.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "apexrenting",
		Short: "Apex Renting portal backend",
	}
	root.AddCommand(serveCmd(), migrateCmd(), ensureAdminCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connect() (*infrastructure.PostgresClient, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	return infrastructure.NewPostgresClient(dsn)
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the portal HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			pgClient, err := connect()
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer pgClient.Close()

			jwtSecret := os.Getenv("JWT_SECRET")
			if jwtSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}

			// Repositories
			profileRepo := repository.NewProfileRepository(pgClient.Pool)
			roleRepo := repository.NewRoleRepository(pgClient.Pool)
			propertyRepo := repository.NewPropertyRepository(pgClient.Pool)
			assignmentRepo := repository.NewAssignmentRepository(pgClient.Pool)
			invoiceRepo := repository.NewInvoiceRepository(pgClient.Pool)
			redirectRepo := repository.NewRedirectRepository(pgClient.Pool)
			contactRepo := repository.NewContactRepository(pgClient.Pool)

			// Usecases
			authUsecase := usecases.NewAuthUsecase(profileRepo, roleRepo, jwtSecret)
			resolver := usecases.NewIdentityResolver(profileRepo, roleRepo, propertyRepo)
			portal := usecases.NewPortalUsecase(propertyRepo, assignmentRepo, invoiceRepo, profileRepo)
			registry := usecases.NewRedirectRegistry(redirectRepo, profileRepo)

			// Invoice change feed: DB trigger -> LISTEN -> hub -> SSE
			hub := infrastructure.NewInvoiceHub()
			listener := infrastructure.NewInvoiceListener(pgClient.Pool, hub)
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go listener.Run(ctx)

			middleware := http.NewMiddleware(jwtSecret, resolver)
			publicHandler := http.NewPublicHandler(contactRepo)
			adminHandler := http.NewAdminHandler(portal, registry, propertyRepo, assignmentRepo, profileRepo)

			r := gin.Default()
			http.SetupRoutes(r, authUsecase, resolver, portal, registry, hub, publicHandler, adminHandler, middleware)

			if addr == "" {
				addr = os.Getenv("LISTEN_ADDR")
			}
			if addr == "" {
				addr = "0.0.0.0:8080"
			}
			return r.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to LISTEN_ADDR or 0.0.0.0:8080)")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			pgClient, err := connect()
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer pgClient.Close()
			fmt.Println("Schema is up to date.")
			return nil
		},
	}
}

func ensureAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-admin <email> <password>",
		Short: "Create an admin account if it does not exist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pgClient, err := connect()
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer pgClient.Close()

			profileRepo := repository.NewProfileRepository(pgClient.Pool)
			roleRepo := repository.NewRoleRepository(pgClient.Pool)
			authUsecase := usecases.NewAuthUsecase(profileRepo, roleRepo, os.Getenv("JWT_SECRET"))

			if err := authUsecase.EnsureAdmin(args[0], args[1]); err != nil {
				return fmt.Errorf("failed to ensure admin user: %w", err)
			}
			fmt.Println("Admin user ready:", args[0])
			return nil
		},
	}
}
