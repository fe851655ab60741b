package models

type Tema struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Descricao string     `json:"descricao" gorm:"size:100;not null"`
	Postagem  []Postagem `json:"postagem,omitempty" gorm:"foreignKey:TemaID;constraint:OnDelete:CASCADE"`
}

func (Tema) TableName() string {
	return "tb_temas"
}

type CriarTemaRequest struct {
	Descricao string `json:"descricao" binding:"required,min=10,max=100"`
}

type AtualizarTemaRequest struct {
	ID        uint   `json:"id" binding:"required"`
	Descricao string `json:"descricao" binding:"required,min=10,max=100"`
}
