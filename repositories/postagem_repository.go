package repositories

import (
	"errors"

	"blogpessoal/models"

	"gorm.io/gorm"
)

type PostagemRepository interface {
	FindAll() ([]models.Postagem, error)
	FindByID(id uint) (*models.Postagem, error)
	FindByTitulo(titulo string) ([]models.Postagem, error)
	Create(p *models.Postagem) error
	Save(p *models.Postagem) error
	Delete(id uint) error
}

type postagemRepository struct {
	db *gorm.DB
}

func NewPostagemRepository(db *gorm.DB) PostagemRepository {
	return &postagemRepository{db: db}
}

func (r *postagemRepository) FindAll() ([]models.Postagem, error) {
	var postagens []models.Postagem
	err := r.db.Preload("Tema").Preload("Usuario").Find(&postagens).Error
	return postagens, err
}

func (r *postagemRepository) FindByID(id uint) (*models.Postagem, error) {
	var postagem models.Postagem
	err := r.db.Preload("Tema").Preload("Usuario").First(&postagem, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &postagem, nil
}

func (r *postagemRepository) FindByTitulo(titulo string) ([]models.Postagem, error) {
	var postagens []models.Postagem
	err := r.db.Preload("Tema").Preload("Usuario").
		Where("LOWER(titulo) LIKE LOWER(?)", "%"+titulo+"%").
		Find(&postagens).Error
	return postagens, err
}

func (r *postagemRepository) Create(p *models.Postagem) error {
	return r.db.Create(p).Error
}

func (r *postagemRepository) Save(p *models.Postagem) error {
	return r.db.Save(p).Error
}

func (r *postagemRepository) Delete(id uint) error {
	return r.db.Delete(&models.Postagem{}, id).Error
}
