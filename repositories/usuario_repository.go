package repositories

import (
	"errors"

	"blogpessoal/models"

	"gorm.io/gorm"
)

// UsuarioRepository abstrai a persistência de usuários. Buscas que não
// encontram registro retornam (nil, nil).
type UsuarioRepository interface {
	FindAll() ([]models.Usuario, error)
	FindByID(id uint) (*models.Usuario, error)
	FindByUsuario(usuario string) (*models.Usuario, error)
	Create(u *models.Usuario) error
	Save(u *models.Usuario) error
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) FindAll() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	err := r.db.Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepository) FindByID(id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.Preload("Postagem").First(&usuario, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) FindByUsuario(email string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.Where("usuario = ?", email).First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) Create(u *models.Usuario) error {
	return r.db.Create(u).Error
}

func (r *usuarioRepository) Save(u *models.Usuario) error {
	return r.db.Save(u).Error
}
