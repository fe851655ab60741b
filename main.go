package main

import (
	"log"

	"blogpessoal/config"
	"blogpessoal/controllers"
	"blogpessoal/database"
	"blogpessoal/middleware"
	"blogpessoal/repositories"
	"blogpessoal/routes"
	"blogpessoal/services"
	"blogpessoal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "blogpessoal/docs"
)

// @title Blog Pessoal API
// @version 1.0
// @description API REST de blog com usuários, temas e postagens, protegida por JWT.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db)

	jwtService := utils.NewJwtService(cfg.JWTSecret, cfg.JWTExpiry)

	usuarioRepo := repositories.NewUsuarioRepository(db)
	temaRepo := repositories.NewTemaRepository(db)
	postagemRepo := repositories.NewPostagemRepository(db)

	usuarioService := services.NewUsuarioService(usuarioRepo, jwtService)
	temaService := services.NewTemaService(temaRepo)
	postagemService := services.NewPostagemService(postagemRepo, temaRepo, usuarioRepo)

	usuarioController := controllers.NewUsuarioController(usuarioService)
	temaController := controllers.NewTemaController(temaService)
	postagemController := controllers.NewPostagemController(postagemService)

	r := gin.Default()

	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Logger())

	routes.SetupRoutes(r, jwtService, usuarioController, temaController, postagemController)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
