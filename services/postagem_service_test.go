package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogpessoal/models"
	"blogpessoal/services"
)

// MockPostagemRepository é uma implementação mock da interface PostagemRepository
type MockPostagemRepository struct {
	mock.Mock
}

func (m *MockPostagemRepository) FindAll() ([]models.Postagem, error) {
	args := m.Called()
	return args.Get(0).([]models.Postagem), args.Error(1)
}

func (m *MockPostagemRepository) FindByID(id uint) (*models.Postagem, error) {
	args := m.Called(id)
	if p, ok := args.Get(0).(*models.Postagem); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostagemRepository) FindByTitulo(titulo string) ([]models.Postagem, error) {
	args := m.Called(titulo)
	return args.Get(0).([]models.Postagem), args.Error(1)
}

func (m *MockPostagemRepository) Create(p *models.Postagem) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPostagemRepository) Save(p *models.Postagem) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPostagemRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func novoPostagemService(postagemRepo *MockPostagemRepository, temaRepo *MockTemaRepository, usuarioRepo *MockUsuarioRepository) *services.PostagemService {
	return services.NewPostagemService(postagemRepo, temaRepo, usuarioRepo)
}

func TestCriarPostagem_Success(t *testing.T) {
	postagemRepo := new(MockPostagemRepository)
	temaRepo := new(MockTemaRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPostagemService(postagemRepo, temaRepo, usuarioRepo)

	temaRepo.On("FindByID", uint(1)).Return(&models.Tema{ID: 1, Descricao: "Desenvolvimento backend"}, nil)
	usuarioRepo.On("FindByID", uint(2)).Return(&models.Usuario{ID: 2, Usuario: "thuany@email.com"}, nil)
	postagemRepo.On("Create", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Postagem).ID = 10
	})

	postagem, err := svc.Criar(&models.CriarPostagemRequest{
		Titulo:    "Minha primeira postagem",
		Texto:     "Conteúdo da primeira postagem do blog.",
		TemaID:    1,
		UsuarioID: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(10), postagem.ID)
	assert.Equal(t, uint(1), postagem.TemaID)
	assert.Equal(t, uint(2), postagem.UsuarioID)
	postagemRepo.AssertExpectations(t)
}

func TestCriarPostagem_Fail_TemaInexistente(t *testing.T) {
	postagemRepo := new(MockPostagemRepository)
	temaRepo := new(MockTemaRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPostagemService(postagemRepo, temaRepo, usuarioRepo)

	temaRepo.On("FindByID", uint(99)).Return(nil, nil)

	_, err := svc.Criar(&models.CriarPostagemRequest{
		Titulo:    "Minha primeira postagem",
		Texto:     "Conteúdo da primeira postagem do blog.",
		TemaID:    99,
		UsuarioID: 2,
	})

	assert.ErrorIs(t, err, services.ErrTemaInexistente)
	postagemRepo.AssertNotCalled(t, "Create")
}

func TestCriarPostagem_Fail_UsuarioInexistente(t *testing.T) {
	postagemRepo := new(MockPostagemRepository)
	temaRepo := new(MockTemaRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPostagemService(postagemRepo, temaRepo, usuarioRepo)

	temaRepo.On("FindByID", uint(1)).Return(&models.Tema{ID: 1, Descricao: "Desenvolvimento backend"}, nil)
	usuarioRepo.On("FindByID", uint(99)).Return(nil, nil)

	_, err := svc.Criar(&models.CriarPostagemRequest{
		Titulo:    "Minha primeira postagem",
		Texto:     "Conteúdo da primeira postagem do blog.",
		TemaID:    1,
		UsuarioID: 99,
	})

	assert.ErrorIs(t, err, services.ErrUsuarioInexistente)
	postagemRepo.AssertNotCalled(t, "Create")
}

func TestAtualizarPostagem_Fail_IDInexistente(t *testing.T) {
	postagemRepo := new(MockPostagemRepository)
	temaRepo := new(MockTemaRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPostagemService(postagemRepo, temaRepo, usuarioRepo)

	postagemRepo.On("FindByID", uint(55)).Return(nil, nil)

	_, err := svc.Atualizar(&models.AtualizarPostagemRequest{
		ID:        55,
		Titulo:    "Título revisado",
		Texto:     "Texto revisado da postagem.",
		TemaID:    1,
		UsuarioID: 2,
	})

	assert.ErrorIs(t, err, services.ErrNaoEncontrado)
	postagemRepo.AssertNotCalled(t, "Save")
}

func TestDeletarPostagem_Success(t *testing.T) {
	postagemRepo := new(MockPostagemRepository)
	temaRepo := new(MockTemaRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPostagemService(postagemRepo, temaRepo, usuarioRepo)

	postagemRepo.On("FindByID", uint(10)).Return(&models.Postagem{ID: 10, Titulo: "Minha primeira postagem"}, nil)
	postagemRepo.On("Delete", uint(10)).Return(nil)

	err := svc.Deletar(10)

	assert.NoError(t, err)
	postagemRepo.AssertExpectations(t)
}
