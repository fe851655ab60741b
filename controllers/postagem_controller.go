package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"blogpessoal/models"
	"blogpessoal/services"

	"github.com/gin-gonic/gin"
)

type PostagemController struct {
	postagemService *services.PostagemService
}

func NewPostagemController(postagemService *services.PostagemService) *PostagemController {
	return &PostagemController{postagemService: postagemService}
}

// Criar godoc
// @Summary Cria uma nova postagem
// @Description O tema e o usuário referenciados precisam existir.
// @Tags postagens
// @Accept json
// @Produce json
// @Param postagem body models.CriarPostagemRequest true "Dados da postagem"
// @Success 201 {object} models.Postagem
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /postagens [post]
func (pc *PostagemController) Criar(c *gin.Context) {
	var req models.CriarPostagemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	postagem, err := pc.postagemService.Criar(&req)
	if err != nil {
		if errors.Is(err, services.ErrTemaInexistente) || errors.Is(err, services.ErrUsuarioInexistente) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create postagem"})
		return
	}

	c.JSON(http.StatusCreated, postagem)
}

// Atualizar godoc
// @Summary Atualiza uma postagem
// @Tags postagens
// @Accept json
// @Produce json
// @Param postagem body models.AtualizarPostagemRequest true "Postagem com id"
// @Success 200 {object} models.Postagem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /postagens [put]
func (pc *PostagemController) Atualizar(c *gin.Context) {
	var req models.AtualizarPostagemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	postagem, err := pc.postagemService.Atualizar(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNaoEncontrado):
			c.JSON(http.StatusNotFound, gin.H{"error": "Postagem not found"})
		case errors.Is(err, services.ErrTemaInexistente), errors.Is(err, services.ErrUsuarioInexistente):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update postagem"})
		}
		return
	}

	c.JSON(http.StatusOK, postagem)
}

// Deletar godoc
// @Summary Deleta uma postagem
// @Tags postagens
// @Param id path int true "ID da postagem"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /postagens/{id} [delete]
func (pc *PostagemController) Deletar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid postagem ID"})
		return
	}

	if err := pc.postagemService.Deletar(uint(id)); err != nil {
		if errors.Is(err, services.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Postagem not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete postagem"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAll godoc
// @Summary Lista todas as postagens
// @Tags postagens
// @Produce json
// @Success 200 {array} models.Postagem
// @Security BearerAuth
// @Router /postagens [get]
func (pc *PostagemController) GetAll(c *gin.Context) {
	postagens, err := pc.postagemService.ListarTodas()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch postagens"})
		return
	}

	c.JSON(http.StatusOK, postagens)
}

// GetByID godoc
// @Summary Busca uma postagem por ID
// @Tags postagens
// @Produce json
// @Param id path int true "ID da postagem"
// @Success 200 {object} models.Postagem
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /postagens/{id} [get]
func (pc *PostagemController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid postagem ID"})
		return
	}

	postagem, err := pc.postagemService.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Postagem not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch postagem"})
		return
	}

	c.JSON(http.StatusOK, postagem)
}

// GetByTitulo godoc
// @Summary Busca postagens por título
// @Description Busca por substring do título, sem diferenciar maiúsculas de minúsculas.
// @Tags postagens
// @Produce json
// @Param titulo path string true "Trecho do título"
// @Success 200 {array} models.Postagem
// @Security BearerAuth
// @Router /postagens/titulo/{titulo} [get]
func (pc *PostagemController) GetByTitulo(c *gin.Context) {
	postagens, err := pc.postagemService.BuscarPorTitulo(c.Param("titulo"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch postagens"})
		return
	}

	c.JSON(http.StatusOK, postagens)
}
