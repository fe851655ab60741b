package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"blogpessoal/models"
	"blogpessoal/services"

	"github.com/gin-gonic/gin"
)

type TemaController struct {
	temaService *services.TemaService
}

func NewTemaController(temaService *services.TemaService) *TemaController {
	return &TemaController{temaService: temaService}
}

// Criar godoc
// @Summary Cria um novo tema
// @Tags temas
// @Accept json
// @Produce json
// @Param tema body models.CriarTemaRequest true "Descrição do tema (10 a 100 caracteres)"
// @Success 201 {object} models.Tema
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /temas [post]
func (tc *TemaController) Criar(c *gin.Context) {
	var req models.CriarTemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tema, err := tc.temaService.Criar(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tema"})
		return
	}

	c.JSON(http.StatusCreated, tema)
}

// Atualizar godoc
// @Summary Atualiza um tema
// @Tags temas
// @Accept json
// @Produce json
// @Param tema body models.AtualizarTemaRequest true "Tema com id"
// @Success 200 {object} models.Tema
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /temas [put]
func (tc *TemaController) Atualizar(c *gin.Context) {
	var req models.AtualizarTemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tema, err := tc.temaService.Atualizar(&req)
	if err != nil {
		if errors.Is(err, services.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tema not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tema"})
		return
	}

	c.JSON(http.StatusOK, tema)
}

// Deletar godoc
// @Summary Deleta um tema e suas postagens
// @Description Remove o tema e, por cascata, todas as postagens associadas a ele.
// @Tags temas
// @Param id path int true "ID do tema"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /temas/{id} [delete]
func (tc *TemaController) Deletar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tema ID"})
		return
	}

	if err := tc.temaService.Deletar(uint(id)); err != nil {
		if errors.Is(err, services.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tema not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tema"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAll godoc
// @Summary Lista todos os temas
// @Tags temas
// @Produce json
// @Success 200 {array} models.Tema
// @Security BearerAuth
// @Router /temas [get]
func (tc *TemaController) GetAll(c *gin.Context) {
	temas, err := tc.temaService.ListarTodos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch temas"})
		return
	}

	c.JSON(http.StatusOK, temas)
}

// GetByID godoc
// @Summary Busca um tema por ID
// @Tags temas
// @Produce json
// @Param id path int true "ID do tema"
// @Success 200 {object} models.Tema
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /temas/{id} [get]
func (tc *TemaController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tema ID"})
		return
	}

	tema, err := tc.temaService.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tema not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tema"})
		return
	}

	c.JSON(http.StatusOK, tema)
}

// GetByDescricao godoc
// @Summary Busca temas por descrição
// @Description Busca por substring da descrição, sem diferenciar maiúsculas de minúsculas.
// @Tags temas
// @Produce json
// @Param descricao path string true "Trecho da descrição"
// @Success 200 {array} models.Tema
// @Security BearerAuth
// @Router /temas/descricao/{descricao} [get]
func (tc *TemaController) GetByDescricao(c *gin.Context) {
	temas, err := tc.temaService.BuscarPorDescricao(c.Param("descricao"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch temas"})
		return
	}

	c.JSON(http.StatusOK, temas)
}
