package services

import (
	"blogpessoal/models"
	"blogpessoal/repositories"
)

type PostagemService struct {
	repo        repositories.PostagemRepository
	temaRepo    repositories.TemaRepository
	usuarioRepo repositories.UsuarioRepository
}

func NewPostagemService(
	repo repositories.PostagemRepository,
	temaRepo repositories.TemaRepository,
	usuarioRepo repositories.UsuarioRepository,
) *PostagemService {
	return &PostagemService{
		repo:        repo,
		temaRepo:    temaRepo,
		usuarioRepo: usuarioRepo,
	}
}

// Criar persiste uma nova postagem após confirmar que o tema e o usuário
// referenciados existem.
func (s *PostagemService) Criar(req *models.CriarPostagemRequest) (*models.Postagem, error) {
	if err := s.validarReferencias(req.TemaID, req.UsuarioID); err != nil {
		return nil, err
	}

	postagem := &models.Postagem{
		Titulo:    req.Titulo,
		Texto:     req.Texto,
		TemaID:    req.TemaID,
		UsuarioID: req.UsuarioID,
	}

	if err := s.repo.Create(postagem); err != nil {
		return nil, err
	}
	return postagem, nil
}

func (s *PostagemService) Atualizar(req *models.AtualizarPostagemRequest) (*models.Postagem, error) {
	postagem, err := s.repo.FindByID(req.ID)
	if err != nil {
		return nil, err
	}
	if postagem == nil {
		return nil, ErrNaoEncontrado
	}

	if err := s.validarReferencias(req.TemaID, req.UsuarioID); err != nil {
		return nil, err
	}

	postagem.Titulo = req.Titulo
	postagem.Texto = req.Texto
	postagem.TemaID = req.TemaID
	postagem.UsuarioID = req.UsuarioID
	postagem.Tema = nil
	postagem.Usuario = nil

	if err := s.repo.Save(postagem); err != nil {
		return nil, err
	}
	return postagem, nil
}

func (s *PostagemService) Deletar(id uint) error {
	postagem, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if postagem == nil {
		return ErrNaoEncontrado
	}
	return s.repo.Delete(id)
}

func (s *PostagemService) BuscarPorID(id uint) (*models.Postagem, error) {
	postagem, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if postagem == nil {
		return nil, ErrNaoEncontrado
	}
	return postagem, nil
}

func (s *PostagemService) BuscarPorTitulo(titulo string) ([]models.Postagem, error) {
	return s.repo.FindByTitulo(titulo)
}

func (s *PostagemService) ListarTodas() ([]models.Postagem, error) {
	return s.repo.FindAll()
}

func (s *PostagemService) validarReferencias(temaID, usuarioID uint) error {
	tema, err := s.temaRepo.FindByID(temaID)
	if err != nil {
		return err
	}
	if tema == nil {
		return ErrTemaInexistente
	}

	usuario, err := s.usuarioRepo.FindByID(usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return ErrUsuarioInexistente
	}
	return nil
}
