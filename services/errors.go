package services

import "errors"

var (
	ErrUsuarioDuplicado     = errors.New("usuário já cadastrado com este e-mail")
	ErrNaoEncontrado        = errors.New("registro não encontrado")
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrTemaInexistente      = errors.New("tema inexistente")
	ErrUsuarioInexistente   = errors.New("usuário inexistente")
)
