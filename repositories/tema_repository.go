package repositories

import (
	"errors"

	"blogpessoal/models"

	"gorm.io/gorm"
)

type TemaRepository interface {
	FindAll() ([]models.Tema, error)
	FindByID(id uint) (*models.Tema, error)
	FindByDescricao(descricao string) ([]models.Tema, error)
	Create(t *models.Tema) error
	Save(t *models.Tema) error
	DeleteComPostagens(id uint) error
}

type temaRepository struct {
	db *gorm.DB
}

func NewTemaRepository(db *gorm.DB) TemaRepository {
	return &temaRepository{db: db}
}

func (r *temaRepository) FindAll() ([]models.Tema, error) {
	var temas []models.Tema
	err := r.db.Find(&temas).Error
	return temas, err
}

func (r *temaRepository) FindByID(id uint) (*models.Tema, error) {
	var tema models.Tema
	err := r.db.Preload("Postagem").First(&tema, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tema, nil
}

// FindByDescricao busca temas cuja descrição contenha o termo, sem
// diferenciar maiúsculas de minúsculas.
func (r *temaRepository) FindByDescricao(descricao string) ([]models.Tema, error) {
	var temas []models.Tema
	err := r.db.Where("LOWER(descricao) LIKE LOWER(?)", "%"+descricao+"%").Find(&temas).Error
	return temas, err
}

func (r *temaRepository) Create(t *models.Tema) error {
	return r.db.Create(t).Error
}

func (r *temaRepository) Save(t *models.Tema) error {
	return r.db.Save(t).Error
}

// DeleteComPostagens remove o tema e todas as postagens associadas numa
// única transação, garantindo o cascade mesmo sem a constraint no banco.
func (r *temaRepository) DeleteComPostagens(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tema_id = ?", id).Delete(&models.Postagem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tema{}, id).Error
	})
}
