package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"blogpessoal/models"
)

func TestCriarTema(t *testing.T) {
	env := setupTestEnv()
	env.cadastrar(t, "Thuany", "thuany@email.com", "12345678")
	login := env.logar(t, "thuany@email.com", "12345678")

	w := env.request(http.MethodPost, "/temas", login.Token, models.CriarTemaRequest{
		Descricao: "Desenvolvimento backend",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var tema models.Tema
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &tema))
	assert.NotZero(t, tema.ID)
}

func TestCriarTema_DescricaoCurta(t *testing.T) {
	env := setupTestEnv()
	env.cadastrar(t, "Thuany", "thuany@email.com", "12345678")
	login := env.logar(t, "thuany@email.com", "12345678")

	w := env.request(http.MethodPost, "/temas", login.Token, models.CriarTemaRequest{
		Descricao: "curta",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCriarTema_SemToken(t *testing.T) {
	env := setupTestEnv()

	w := env.request(http.MethodPost, "/temas", "", models.CriarTemaRequest{
		Descricao: "Desenvolvimento backend",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBuscarTemaPorDescricao_CaseInsensitive(t *testing.T) {
	env := setupTestEnv()
	env.cadastrar(t, "Thuany", "thuany@email.com", "12345678")
	login := env.logar(t, "thuany@email.com", "12345678")

	env.request(http.MethodPost, "/temas", login.Token, models.CriarTemaRequest{
		Descricao: "Desenvolvimento Backend",
	})
	env.request(http.MethodPost, "/temas", login.Token, models.CriarTemaRequest{
		Descricao: "Receitas de cozinha",
	})

	w := env.request(http.MethodGet, "/temas/descricao/backend", login.Token, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var temas []models.Tema
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &temas))
	assert.Len(t, temas, 1)
}

func TestDeletarTema_CascataRemovePostagens(t *testing.T) {
	env := setupTestEnv()
	usuario := env.cadastrar(t, "Thuany", "thuany@email.com", "12345678")
	login := env.logar(t, "thuany@email.com", "12345678")

	w := env.request(http.MethodPost, "/temas", login.Token, models.CriarTemaRequest{
		Descricao: "Desenvolvimento backend",
	})
	var tema models.Tema
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &tema))

	for i := 0; i < 3; i++ {
		resp := env.request(http.MethodPost, "/postagens", login.Token, models.CriarPostagemRequest{
			Titulo:    fmt.Sprintf("Postagem número %d", i+1),
			Texto:     "Texto da postagem associada ao tema.",
			TemaID:    tema.ID,
			UsuarioID: usuario.ID,
		})
		assert.Equal(t, http.StatusCreated, resp.Code)
	}

	del := env.request(http.MethodDelete, fmt.Sprintf("/temas/%d", tema.ID), login.Token, nil)
	assert.Equal(t, http.StatusNoContent, del.Code)

	lista := env.request(http.MethodGet, "/postagens", login.Token, nil)
	assert.Equal(t, http.StatusOK, lista.Code)

	var postagens []models.Postagem
	assert.NoError(t, json.Unmarshal(lista.Body.Bytes(), &postagens))
	assert.Empty(t, postagens)
}

func TestCriarPostagem_TemaInexistente(t *testing.T) {
	env := setupTestEnv()
	usuario := env.cadastrar(t, "Thuany", "thuany@email.com", "12345678")
	login := env.logar(t, "thuany@email.com", "12345678")

	w := env.request(http.MethodPost, "/postagens", login.Token, models.CriarPostagemRequest{
		Titulo:    "Postagem sem tema",
		Texto:     "Texto de uma postagem cujo tema não existe.",
		TemaID:    999,
		UsuarioID: usuario.ID,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
