package routes

import (
	"net/http"

	"blogpessoal/controllers"
	"blogpessoal/middleware"
	"blogpessoal/utils"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registra todos os endpoints. Apenas /usuarios/cadastrar e
// /usuarios/logar são públicos; o restante exige token Bearer.
func SetupRoutes(
	r *gin.Engine,
	jwt *utils.JwtService,
	usuarioController *controllers.UsuarioController,
	temaController *controllers.TemaController,
	postagemController *controllers.PostagemController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.AuthRequired(jwt)

	usuarios := r.Group("/usuarios")
	{
		usuarios.POST("/cadastrar", usuarioController.Cadastrar)
		usuarios.POST("/logar", usuarioController.Logar)

		protegido := usuarios.Group("")
		protegido.Use(auth)
		{
			protegido.GET("/all", usuarioController.GetAll)
			protegido.GET("/:id", usuarioController.GetByID)
			protegido.PUT("/atualizar", usuarioController.Atualizar)
		}
	}

	temas := r.Group("/temas")
	temas.Use(auth)
	{
		temas.GET("", temaController.GetAll)
		temas.GET("/:id", temaController.GetByID)
		temas.GET("/descricao/:descricao", temaController.GetByDescricao)
		temas.POST("", temaController.Criar)
		temas.PUT("", temaController.Atualizar)
		temas.DELETE("/:id", temaController.Deletar)
	}

	postagens := r.Group("/postagens")
	postagens.Use(auth)
	{
		postagens.GET("", postagemController.GetAll)
		postagens.GET("/:id", postagemController.GetByID)
		postagens.GET("/titulo/:titulo", postagemController.GetByTitulo)
		postagens.POST("", postagemController.Criar)
		postagens.PUT("", postagemController.Atualizar)
		postagens.DELETE("/:id", postagemController.Deletar)
	}
}
