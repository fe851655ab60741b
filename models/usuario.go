package models

import (
	"golang.org/x/crypto/bcrypt"
)

type Usuario struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	Nome     string     `json:"nome" gorm:"not null"`
	Usuario  string     `json:"usuario" gorm:"uniqueIndex;not null"`
	Senha    string     `json:"-" gorm:"not null"`
	Foto     string     `json:"foto,omitempty"`
	Postagem []Postagem `json:"postagem,omitempty" gorm:"foreignKey:UsuarioID"`
}

func (Usuario) TableName() string {
	return "tb_usuarios"
}

type CadastrarUsuarioRequest struct {
	Nome    string `json:"nome" binding:"required"`
	Usuario string `json:"usuario" binding:"required,email"`
	Senha   string `json:"senha" binding:"required,min=8"`
	Foto    string `json:"foto"`
}

type AtualizarUsuarioRequest struct {
	ID      uint   `json:"id" binding:"required"`
	Nome    string `json:"nome" binding:"required"`
	Usuario string `json:"usuario" binding:"required,email"`
	Senha   string `json:"senha" binding:"required,min=8"`
	Foto    string `json:"foto"`
}

type LoginRequest struct {
	Usuario string `json:"usuario" binding:"required,email"`
	Senha   string `json:"senha" binding:"required"`
}

// UsuarioLogin é o corpo de resposta do login, com o token emitido.
type UsuarioLogin struct {
	ID      uint   `json:"id"`
	Nome    string `json:"nome"`
	Usuario string `json:"usuario"`
	Foto    string `json:"foto,omitempty"`
	Token   string `json:"token"`
}

func (u *Usuario) HashSenha() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Senha = string(hash)
	return nil
}

func (u *Usuario) CheckSenha(senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Senha), []byte(senha))
	return err == nil
}
