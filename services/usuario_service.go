package services

import (
	"blogpessoal/models"
	"blogpessoal/repositories"
	"blogpessoal/utils"
)

type UsuarioService struct {
	repo repositories.UsuarioRepository
	jwt  *utils.JwtService
}

func NewUsuarioService(repo repositories.UsuarioRepository, jwt *utils.JwtService) *UsuarioService {
	return &UsuarioService{repo: repo, jwt: jwt}
}

// Cadastrar registra um novo usuário. Falha com ErrUsuarioDuplicado se o
// e-mail já estiver cadastrado. A senha é armazenada apenas como hash bcrypt.
func (s *UsuarioService) Cadastrar(req *models.CadastrarUsuarioRequest) (*models.Usuario, error) {
	existente, err := s.repo.FindByUsuario(req.Usuario)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, ErrUsuarioDuplicado
	}

	usuario := &models.Usuario{
		Nome:    req.Nome,
		Usuario: req.Usuario,
		Senha:   req.Senha,
		Foto:    req.Foto,
	}

	if err := usuario.HashSenha(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(usuario); err != nil {
		return nil, err
	}

	return usuario, nil
}

// Atualizar substitui o registro inteiro. Falha com ErrNaoEncontrado se o id
// não existir e com ErrUsuarioDuplicado se o novo e-mail pertencer a outro
// usuário. A senha é sempre re-hasheada.
func (s *UsuarioService) Atualizar(req *models.AtualizarUsuarioRequest) (*models.Usuario, error) {
	usuario, err := s.repo.FindByID(req.ID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrNaoEncontrado
	}

	existente, err := s.repo.FindByUsuario(req.Usuario)
	if err != nil {
		return nil, err
	}
	if existente != nil && existente.ID != req.ID {
		return nil, ErrUsuarioDuplicado
	}

	usuario.Nome = req.Nome
	usuario.Usuario = req.Usuario
	usuario.Senha = req.Senha
	usuario.Foto = req.Foto

	if err := usuario.HashSenha(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(usuario); err != nil {
		return nil, err
	}

	return usuario, nil
}

// Autenticar verifica as credenciais e, em caso de sucesso, emite um token
// com o e-mail como subject. Qualquer falha (e-mail desconhecido ou senha
// incorreta) resulta em ErrCredenciaisInvalidas.
func (s *UsuarioService) Autenticar(req *models.LoginRequest) (*models.UsuarioLogin, error) {
	usuario, err := s.repo.FindByUsuario(req.Usuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrCredenciaisInvalidas
	}

	if !usuario.CheckSenha(req.Senha) {
		return nil, ErrCredenciaisInvalidas
	}

	token, err := s.jwt.GenerateToken(usuario.Usuario)
	if err != nil {
		return nil, err
	}

	return &models.UsuarioLogin{
		ID:      usuario.ID,
		Nome:    usuario.Nome,
		Usuario: usuario.Usuario,
		Foto:    usuario.Foto,
		Token:   token,
	}, nil
}

func (s *UsuarioService) BuscarPorID(id uint) (*models.Usuario, error) {
	usuario, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrNaoEncontrado
	}
	return usuario, nil
}

func (s *UsuarioService) ListarTodos() ([]models.Usuario, error) {
	return s.repo.FindAll()
}
