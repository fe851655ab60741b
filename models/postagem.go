package models

import (
	"time"
)

type Postagem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Titulo    string    `json:"titulo" gorm:"size:100;not null"`
	Texto     string    `json:"texto" gorm:"size:1000;not null"`
	Data      time.Time `json:"data" gorm:"autoUpdateTime"`
	TemaID    uint      `json:"tema_id" gorm:"not null"`
	Tema      *Tema     `json:"tema,omitempty"`
	UsuarioID uint      `json:"usuario_id" gorm:"not null"`
	Usuario   *Usuario  `json:"usuario,omitempty"`
}

func (Postagem) TableName() string {
	return "tb_postagens"
}

type CriarPostagemRequest struct {
	Titulo    string `json:"titulo" binding:"required,min=5,max=100"`
	Texto     string `json:"texto" binding:"required,min=10,max=1000"`
	TemaID    uint   `json:"tema_id" binding:"required"`
	UsuarioID uint   `json:"usuario_id" binding:"required"`
}

type AtualizarPostagemRequest struct {
	ID        uint   `json:"id" binding:"required"`
	Titulo    string `json:"titulo" binding:"required,min=5,max=100"`
	Texto     string `json:"texto" binding:"required,min=10,max=1000"`
	TemaID    uint   `json:"tema_id" binding:"required"`
	UsuarioID uint   `json:"usuario_id" binding:"required"`
}
