package services

import (
	"blogpessoal/models"
	"blogpessoal/repositories"
)

type TemaService struct {
	repo repositories.TemaRepository
}

func NewTemaService(repo repositories.TemaRepository) *TemaService {
	return &TemaService{repo: repo}
}

func (s *TemaService) Criar(req *models.CriarTemaRequest) (*models.Tema, error) {
	tema := &models.Tema{Descricao: req.Descricao}
	if err := s.repo.Create(tema); err != nil {
		return nil, err
	}
	return tema, nil
}

func (s *TemaService) Atualizar(req *models.AtualizarTemaRequest) (*models.Tema, error) {
	tema, err := s.repo.FindByID(req.ID)
	if err != nil {
		return nil, err
	}
	if tema == nil {
		return nil, ErrNaoEncontrado
	}

	tema.Descricao = req.Descricao
	if err := s.repo.Save(tema); err != nil {
		return nil, err
	}
	return tema, nil
}

// Deletar remove o tema e, por cascata, todas as postagens associadas.
func (s *TemaService) Deletar(id uint) error {
	tema, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if tema == nil {
		return ErrNaoEncontrado
	}
	return s.repo.DeleteComPostagens(id)
}

func (s *TemaService) BuscarPorID(id uint) (*models.Tema, error) {
	tema, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if tema == nil {
		return nil, ErrNaoEncontrado
	}
	return tema, nil
}

func (s *TemaService) BuscarPorDescricao(descricao string) ([]models.Tema, error) {
	return s.repo.FindByDescricao(descricao)
}

func (s *TemaService) ListarTodos() ([]models.Tema, error) {
	return s.repo.FindAll()
}
