package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"blogpessoal/models"
	"blogpessoal/services"

	"github.com/gin-gonic/gin"
)

type UsuarioController struct {
	usuarioService *services.UsuarioService
}

func NewUsuarioController(usuarioService *services.UsuarioService) *UsuarioController {
	return &UsuarioController{usuarioService: usuarioService}
}

// Cadastrar godoc
// @Summary Cadastra um novo usuário
// @Description Cria um usuário com senha armazenada como hash bcrypt. Falha se o e-mail já estiver em uso.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param usuario body models.CadastrarUsuarioRequest true "Dados do usuário"
// @Success 201 {object} models.Usuario
// @Failure 400 {object} map[string]string
// @Router /usuarios/cadastrar [post]
func (uc *UsuarioController) Cadastrar(c *gin.Context) {
	var req models.CadastrarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usuario, err := uc.usuarioService.Cadastrar(&req)
	if err != nil {
		if errors.Is(err, services.ErrUsuarioDuplicado) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, usuario)
}

// Logar godoc
// @Summary Autentica um usuário
// @Description Verifica as credenciais e retorna os dados do usuário com um token JWT.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param credenciais body models.LoginRequest true "E-mail e senha"
// @Success 200 {object} models.UsuarioLogin
// @Failure 401 {object} map[string]string
// @Router /usuarios/logar [post]
func (uc *UsuarioController) Logar(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	login, err := uc.usuarioService.Autenticar(&req)
	if err != nil {
		if errors.Is(err, services.ErrCredenciaisInvalidas) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
		return
	}

	c.JSON(http.StatusOK, login)
}

// Atualizar godoc
// @Summary Atualiza um usuário
// @Description Substitui o registro inteiro do usuário. A senha é sempre re-hasheada.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param usuario body models.AtualizarUsuarioRequest true "Dados do usuário com id"
// @Success 200 {object} models.Usuario
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /usuarios/atualizar [put]
func (uc *UsuarioController) Atualizar(c *gin.Context) {
	var req models.AtualizarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usuario, err := uc.usuarioService.Atualizar(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNaoEncontrado):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, services.ErrUsuarioDuplicado):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, usuario)
}

// GetAll godoc
// @Summary Lista todos os usuários
// @Tags usuarios
// @Produce json
// @Success 200 {array} models.Usuario
// @Security BearerAuth
// @Router /usuarios/all [get]
func (uc *UsuarioController) GetAll(c *gin.Context) {
	usuarios, err := uc.usuarioService.ListarTodos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, usuarios)
}

// GetByID godoc
// @Summary Busca um usuário por ID
// @Tags usuarios
// @Produce json
// @Param id path int true "ID do usuário"
// @Success 200 {object} models.Usuario
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /usuarios/{id} [get]
func (uc *UsuarioController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	usuario, err := uc.usuarioService.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, usuario)
}
