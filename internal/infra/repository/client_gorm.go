package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// searchColumns maps each search field to the column filtered on.
var searchColumns = map[domain.Field]string{
	domain.FieldFirstName: "c.fname",
	domain.FieldLastName:  "c.lname",
	domain.FieldEmail:     "c.email",
	domain.FieldPhone:     "p.number",
}

// --------------------------------------------------
// Schema
// --------------------------------------------------

func (r *ClientGormRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if err := r.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return translateError("create schema", err)
		}
	}
	return nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ClientGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		phones := client.Phones

		if err := tx.Omit(clause.Associations).Create(client).Error; err != nil {
			return err
		}

		if len(phones) == 0 {
			return nil
		}

		for i := range phones {
			phones[i].ClientID = client.ID
		}
		return tx.Create(&phones).Error
	})

	return translateError("create client", err)
}

func (r *ClientGormRepository) GetClient(
	ctx context.Context,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Preload("Phones", func(db *gorm.DB) *gorm.DB {
			return db.Order("phone_id ASC")
		}).
		Where("client_id = ?", clientID).
		First(&client).Error
	if err != nil {
		err = translateError("get client", err)
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return nil, httperr.NotFoundError(fmt.Sprintf("client %d not found", clientID))
		}
		return nil, err
	}

	return &client, nil
}

func (r *ClientGormRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.WithContext(ctx).
		Preload("Phones", func(db *gorm.DB) *gorm.DB {
			return db.Order("phone_id ASC")
		}).
		Order("client_id ASC").
		Find(&clients).Error
	if err != nil {
		return nil, translateError("list clients", err)
	}

	return clients, nil
}

func (r *ClientGormRepository) UpdateClient(
	ctx context.Context,
	clientID uint,
	changes domain.Changes,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cols := changes.Columns(); len(cols) > 0 {
			res := tx.Model(&models.Client{}).
				Where("client_id = ?", clientID).
				Updates(cols)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.NotFoundError(fmt.Sprintf("client %d not found", clientID))
			}
		}

		if changes.Phone != nil {
			res := tx.Model(&models.Phone{}).
				Where("phone_id = ? AND client_id = ?", changes.Phone.PhoneID, clientID).
				Update("number", changes.Phone.Number)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.NotFoundError(fmt.Sprintf(
					"phone %d not found for client %d", changes.Phone.PhoneID, clientID,
				))
			}
		}

		return nil
	})

	return translateError("update client", err)
}

func (r *ClientGormRepository) DeleteClient(
	ctx context.Context,
	clientID uint,
) (int64, error) {

	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", clientID).
			Delete(&models.Phone{}).Error; err != nil {
			return err
		}

		res := tx.Where("client_id = ?", clientID).Delete(&models.Client{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, translateError("delete client", err)
	}

	return deleted, nil
}

// --------------------------------------------------
// Phone
// --------------------------------------------------

func (r *ClientGormRepository) AddPhone(
	ctx context.Context,
	phone *models.Phone,
) error {
	err := r.db.WithContext(ctx).Create(phone).Error
	return translateError("add phone", err)
}

func (r *ClientGormRepository) DeletePhone(
	ctx context.Context,
	clientID uint,
	phoneID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("phone_id = ? AND client_id = ?", phoneID, clientID).
		Delete(&models.Phone{})
	if res.Error != nil {
		return 0, translateError("delete phone", res.Error)
	}

	return res.RowsAffected, nil
}

// --------------------------------------------------
// Search
// --------------------------------------------------

func (r *ClientGormRepository) FindClient(
	ctx context.Context,
	field domain.Field,
	value string,
) (*models.ClientMatch, error) {

	column, ok := searchColumns[field]
	if !ok {
		return nil, httperr.InvalidArgument(fmt.Sprintf("unknown search field %q", field))
	}

	var matches []models.ClientMatch
	err := r.db.WithContext(ctx).
		Table("clients AS c").
		Select("c.client_id, c.fname, c.lname, c.email, p.phone_id, p.number").
		Joins("JOIN phones AS p ON p.client_id = c.client_id").
		Where(column+" = ?", value).
		Order("c.client_id ASC, p.phone_id ASC").
		Limit(1).
		Scan(&matches).Error
	if err != nil {
		return nil, translateError("find client", err)
	}

	if len(matches) == 0 {
		return nil, httperr.NotFoundError(fmt.Sprintf("no client with %s %q", field, value))
	}

	return &matches[0], nil
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
